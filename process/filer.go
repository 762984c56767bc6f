package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tradeshot/pkg/extract"
)

const rejectedDir = "rejected"

// fileRecord moves a validated screenshot into its strike/option/company
// folder under dir, named by the record stem. A duplicate target means a
// newer capture of the same trade; the old file is replaced. Returns the
// new path relative to dir.
func fileRecord(dir, name string, rec *extract.TradeRecord) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	folder := filepath.Join(dir, rec.Folder())
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}
	src := filepath.Join(dir, name)
	dst := filepath.Join(folder, rec.Stem()+ext)
	if _, err := os.Stat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return "", fmt.Errorf("replace duplicate: %w", err)
		}
	}
	if err := moveFile(src, dst); err != nil {
		return "", err
	}
	return filepath.Join(rec.Folder(), rec.Stem()+ext), nil
}

// moveToRejected quarantines a misread screenshot under dir/rejected/
// so the operator can review it; nothing is deleted.
func moveToRejected(dir, name string) error {
	qdir := filepath.Join(dir, rejectedDir)
	if err := os.MkdirAll(qdir, 0o755); err != nil {
		return err
	}
	return moveFile(filepath.Join(dir, name), filepath.Join(qdir, name))
}

// moveFile attempts an atomic rename and falls back to copy+remove when
// src and dst sit on different filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	return copyRemove(src, dst)
}

func copyRemove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	_ = out.Close()
	return os.Remove(src)
}
