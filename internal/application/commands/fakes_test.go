package commands

import (
	"fmt"
	"sort"

	"daybook/internal/ports"
)

// memJournal is an in-memory ports.Journal for command tests.
type memJournal struct {
	files     map[string]string
	failWrite bool
}

func newMemJournal(files map[string]string) *memJournal {
	if files == nil {
		files = map[string]string{}
	}
	return &memJournal{files: files}
}

func (j *memJournal) ListEntries() ([]string, error) {
	var names []string
	for name := range j.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (j *memJournal) Read(filename string) (string, error) {
	content, ok := j.files[filename]
	if !ok {
		return "", fmt.Errorf("no such entry: %s", filename)
	}
	return content, nil
}

func (j *memJournal) Write(filename, content string) error {
	if j.failWrite {
		return fmt.Errorf("disk full")
	}
	j.files[filename] = content
	return nil
}

func (j *memJournal) Exists(filename string) (bool, error) {
	_, ok := j.files[filename]
	return ok, nil
}

func (j *memJournal) Create(filename string) error {
	if _, ok := j.files[filename]; ok {
		return nil
	}
	return j.Write(filename, "")
}

func (j *memJournal) Path(filename string) string { return "/journal/" + filename }
func (j *memJournal) Dir() string                 { return "/journal" }

// memTarget is an in-memory ports.SyncTarget.
type memTarget struct {
	files      map[string]string
	failUpload bool
}

func newMemTarget(files map[string]string) *memTarget {
	if files == nil {
		files = map[string]string{}
	}
	return &memTarget{files: files}
}

func (t *memTarget) Upload(filename, content string) error {
	if t.failUpload {
		return fmt.Errorf("target unreachable")
	}
	t.files[filename] = content
	return nil
}

func (t *memTarget) Download(filename string) (string, error) {
	content, ok := t.files[filename]
	if !ok {
		return "", fmt.Errorf("no such entry on target: %s", filename)
	}
	return content, nil
}

func (t *memTarget) List() ([]string, error) {
	var names []string
	for name := range t.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// stubAssistant records the question and entries it was asked.
type stubAssistant struct {
	available bool
	answer    string
	question  string
	entries   []ports.EntryContext
}

func (a *stubAssistant) Ask(question string, entries []ports.EntryContext) (string, error) {
	a.question = question
	a.entries = entries
	return a.answer, nil
}

func (a *stubAssistant) IsAvailable() bool { return a.available }

// stubIndex is a canned ports.EntryIndex.
type stubIndex struct {
	synced  bool
	matches []ports.SearchMatch
}

func (i *stubIndex) Sync() error { i.synced = true; return nil }

func (i *stubIndex) Search(query string) ([]ports.SearchMatch, error) {
	return i.matches, nil
}

func (i *stubIndex) Close() error { return nil }
