package storage

import "github.com/yourname/wellnessgrid/internal"

func NewFileRepositories(usersFile, entriesFile, toolsFile string, logger internal.Logger) (EntryRepository, UserToolRepository, UserRepository, error) {
	storage, err := NewFileStorage(usersFile, entriesFile, toolsFile, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return storage, storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (EntryRepository, UserToolRepository, UserRepository, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return storage, storage, storage, nil
}
