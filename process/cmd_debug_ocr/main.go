package main

import (
	"flag"
	"fmt"
	"log"

	"tradeshot/pkg/extract"
)

func main() {
	f := flag.String("file", "", "image file to OCR")
	companies := flag.String("companies", "companies.txt", "known ticker symbols, one per line")
	date := flag.String("date", "01-01-2025", "batch date used for the record")
	flag.Parse()
	if *f == "" {
		log.Fatalf("-file required")
	}
	cs, err := extract.LoadCompanySet(*companies)
	if err != nil {
		log.Fatalf("company list: %v", err)
	}
	pipe := extract.NewPipeline(extract.DefaultOptions(), cs, extract.NewTesseractDetector())
	res, err := pipe.ExtractRecord(*f, *date)
	if err != nil {
		log.Fatalf("extract error: %v", err)
	}
	for _, fr := range res.Fragments {
		fmt.Printf("frag %q box=%v conf=%.2f\n", fr.Text, fr.Box, fr.Confidence)
	}
	if res.Rejection != nil {
		fmt.Printf("rejected: %s\n", res.Rejection)
		return
	}
	fmt.Printf("record=%+v strategy=%s conf=%.2f stem=%q folder=%q\n",
		*res.Record, res.Strategy, res.Confidence, res.Record.Stem(), res.Record.Folder())
}
