package storage

import (
	"fmt"
	"path"
	"time"
)

type DiskStorage struct {
	RootFolder string
}

func NewDiskStorage(rootFolder string) *DiskStorage {
	return &DiskStorage{
		RootFolder: rootFolder,
	}
}

func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := path.Join(ds.RootFolder, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}
