package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/yourname/wellnessgrid/internal"
)

type FileStorage struct {
	entries        map[string]*internal.TrackingEntry   // id -> entry
	userEntryIndex map[string][]*internal.TrackingEntry // userID -> entries (sorted descending by Timestamp)
	userTools      map[string]map[string]*internal.UserTool
	users          map[string]*internal.User // token -> user
	mu             sync.RWMutex
	usersFile      string
	entriesFile    string
	toolsFile      string
	saveEntryChan  chan struct{}
	saveToolsChan  chan struct{}
	shutdownChan   chan struct{}
	saveEntryDelay time.Duration
	saveToolsDelay time.Duration
	logger         internal.Logger
}

func NewFileStorage(usersFile, entriesFile, toolsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		entries:        make(map[string]*internal.TrackingEntry),
		userEntryIndex: make(map[string][]*internal.TrackingEntry),
		userTools:      make(map[string]map[string]*internal.UserTool),
		users:          make(map[string]*internal.User),
		usersFile:      usersFile,
		entriesFile:    entriesFile,
		toolsFile:      toolsFile,
		saveEntryChan:  make(chan struct{}, 1),
		saveToolsChan:  make(chan struct{}, 1),
		shutdownChan:   make(chan struct{}),
		saveEntryDelay: 500 * time.Millisecond,
		saveToolsDelay: 500 * time.Millisecond,
		logger:         logger,
	}

	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}
	if err := s.loadEntries(); err != nil {
		logger.Errorf("storage: failed to load entries: %v", err)
		return nil, err
	}
	if err := s.loadUserTools(); err != nil {
		logger.Errorf("storage: failed to load user tools: %v", err)
		return nil, err
	}

	go s.saveEntriesWorker()
	go s.saveToolsWorker()

	return s, nil
}

func (s *FileStorage) loadUsers() error {
	file, err := os.Open(s.usersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var users []*internal.User
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.Token] = u
	}
	return nil
}

func (s *FileStorage) loadEntries() error {
	file, err := os.Open(s.entriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var entries []*internal.TrackingEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.entries[e.ID] = e
		s.userEntryIndex[e.UserID] = append(s.userEntryIndex[e.UserID], e)
	}

	// Sort each user's entries descending by Timestamp
	for userID := range s.userEntryIndex {
		sort.Slice(s.userEntryIndex[userID], func(i, j int) bool {
			return s.userEntryIndex[userID][i].Timestamp.After(s.userEntryIndex[userID][j].Timestamp)
		})
	}

	return nil
}

func (s *FileStorage) loadUserTools() error {
	file, err := os.Open(s.toolsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var tools []*internal.UserTool
	if err := json.NewDecoder(file).Decode(&tools); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userTools = make(map[string]map[string]*internal.UserTool)
	for _, t := range tools {
		if s.userTools[t.UserID] == nil {
			s.userTools[t.UserID] = make(map[string]*internal.UserTool)
		}
		s.userTools[t.UserID][t.ToolID] = t
	}

	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveEntries() error {
	s.mu.RLock()
	entries := make([]*internal.TrackingEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.entriesFile, entries)
}

func (s *FileStorage) saveUserTools() error {
	s.mu.RLock()
	var tools []*internal.UserTool
	for _, toolMap := range s.userTools {
		for _, t := range toolMap {
			tools = append(tools, t)
		}
	}
	s.mu.RUnlock()
	if tools == nil {
		tools = make([]*internal.UserTool, 0)
	}
	return atomicWriteFileJSON(s.toolsFile, tools)
}

// saveEntriesWorker batches save operations to avoid frequent disk writes
func (s *FileStorage) saveEntriesWorker() {
	timer := time.NewTimer(s.saveEntryDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveEntryChan:
			timer.Reset(s.saveEntryDelay)
		case <-timer.C:
			if err := s.saveEntries(); err != nil {
				s.logger.Errorf("storage: error saving entries: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) saveToolsWorker() {
	timer := time.NewTimer(s.saveToolsDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveToolsChan:
			timer.Reset(s.saveToolsDelay)
		case <-timer.C:
			if err := s.saveUserTools(); err != nil {
				s.logger.Errorf("storage: error saving user tools: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// Close storage and stop background workers gracefully
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	// Save pending data synchronously on shutdown
	if err := s.saveEntries(); err != nil {
		return err
	}
	if err := s.saveUserTools(); err != nil {
		return err
	}
	return nil
}

// --- EntryRepository ---
func (s *FileStorage) SaveEntry(ctx context.Context, entry *internal.TrackingEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.ID] = entry

	// Update user index - insert maintaining descending order
	entries := s.userEntryIndex[entry.UserID]
	inserted := false
	for i, existing := range entries {
		if existing.Timestamp.Before(entry.Timestamp) {
			entries = append(entries[:i], append([]*internal.TrackingEntry{entry}, entries[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		entries = append(entries, entry)
	}
	s.userEntryIndex[entry.UserID] = entries

	// Signal the save worker (non-blocking)
	select {
	case s.saveEntryChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListEntries(ctx context.Context, userID, toolID string, since time.Time) ([]internal.TrackingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entriesPtr, ok := s.userEntryIndex[userID]
	if !ok {
		return []internal.TrackingEntry{}, nil
	}

	entries := make([]internal.TrackingEntry, 0, len(entriesPtr))
	for _, e := range entriesPtr {
		if toolID != "" && e.ToolID != toolID {
			continue
		}
		if !since.IsZero() && e.Timestamp.Before(since) {
			continue
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

// --- UserToolRepository ---
func (s *FileStorage) SetUserTool(ctx context.Context, tool *internal.UserTool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userTools[tool.UserID] == nil {
		s.userTools[tool.UserID] = make(map[string]*internal.UserTool)
	}
	s.userTools[tool.UserID][tool.ToolID] = tool
	select {
	case s.saveToolsChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListUserTools(ctx context.Context, userID string) ([]internal.UserTool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	toolMap, ok := s.userTools[userID]
	if !ok {
		return []internal.UserTool{}, nil
	}
	tools := make([]internal.UserTool, 0, len(toolMap))
	for _, t := range toolMap {
		tools = append(tools, *t)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].ToolID < tools[j].ToolID })
	return tools, nil
}

// --- UserRepository ---
func (s *FileStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[token]
	if !ok {
		return nil, errors.New("storage: user not found")
	}
	return u, nil
}

// --- Compile-time assertions ---
var _ EntryRepository = (*FileStorage)(nil)
var _ UserToolRepository = (*FileStorage)(nil)
var _ UserRepository = (*FileStorage)(nil)
