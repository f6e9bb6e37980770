package tools

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

type FileFinder interface {
	GetFilesToProcess(input string, folderProcessing, recursive bool) []string
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func (f *StandardFileFinder) GetFilesToProcess(input string, folderProcessing, recursive bool) []string {
	// If folder processing is not enabled then the csv file is given by the input flag directly,
	// otherwise look for csv files in the input folder, eventually excluding nested folders
	// if the recursive flag is disabled
	if !folderProcessing {
		return []string{input}
	}

	return f.getCsvFilesFromInputFolder(input, recursive)
}

func (f *StandardFileFinder) getCsvFilesFromInputFolder(input string, recursive bool) []string {
	var csvFiles = make([]string, 0)

	baseInfo, _ := os.Stat(input)
	err := filepath.Walk(
		input,
		func(path string, info os.FileInfo, err error) error {
			// info is nil when the entry could not be read
			if err != nil {
				return err
			}

			if info.IsDir() && !recursive && !os.SameFile(info, baseInfo) {
				return filepath.SkipDir
			} else {
				if strings.ToLower(filepath.Ext(info.Name())) == ".csv" {
					csvFiles = append(csvFiles, path)
				}
			}
			return nil
		},
	)

	if err != nil {
		glog.Warningln("lookup of csv files in", input, "failed:", err)
	}

	return csvFiles
}
