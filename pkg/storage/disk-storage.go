package storage

import (
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

func (p *DiskStorage) SaveGzippedJson(data any, filename string) error {
	fileName, tmpFileName := p.GetFileName(filename)

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	zipWriter := gzip.NewWriter(file)
	err = sonic.ConfigDefault.NewEncoder(zipWriter).Encode(data)
	if cerr := zipWriter.Close(); err == nil {
		err = cerr
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}

	return os.Rename(tmpFileName, fileName)
}

func (p *DiskStorage) LoadGzippedJson(data any, filename string) error {
	name, _ := p.GetFileName(filename)
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zipReader.Close()

	err = sonic.ConfigDefault.NewDecoder(zipReader).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (p *DiskStorage) SaveJson(data any, name string) error {
	fileName, tmpFileName := p.GetFileName(name)

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	err = sonic.ConfigDefault.NewEncoder(file).Encode(data)
	file.Close()
	if err != nil {
		_ = os.Remove(tmpFileName)
		return err
	}

	return os.Rename(tmpFileName, fileName)
}

func (p *DiskStorage) LoadJson(data any, filename string) error {
	name, _ := p.GetFileName(filename)
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	err = sonic.ConfigDefault.NewDecoder(file).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
