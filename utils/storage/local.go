package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// LocalFileStorage ローカルファイルストレージ
type LocalFileStorage struct {
	dirName string
}

// NewLocalFileStorage LocalFileStorageを生成します
// keyはdirからの相対パスとして扱われます。dirが空の場合はカレントディレクトリです
// 保存時に親ディレクトリは作成しません
func NewLocalFileStorage(dir string) *LocalFileStorage {
	return &LocalFileStorage{dirName: dir}
}

// OpenFileByKey ファイルを取得します
func (fs *LocalFileStorage) OpenFileByKey(key string) (io.ReadCloser, error) {
	f, err := os.Open(fs.getFilePath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

// SaveByKey srcの内容をkeyで指定されたファイルに書き込みます
func (fs *LocalFileStorage) SaveByKey(src io.Reader, key string) (err error) {
	file, err := os.Create(fs.getFilePath(key))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(file, src)
	return err
}

// DeleteByKey ファイルを削除します
func (fs *LocalFileStorage) DeleteByKey(key string) error {
	err := os.Remove(fs.getFilePath(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}

// GetDir ファイルの保存先を取得する
func (fs *LocalFileStorage) GetDir() string {
	return fs.dirName
}

func (fs *LocalFileStorage) getFilePath(key string) string {
	if fs.dirName == "" || filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(fs.dirName, key)
}
