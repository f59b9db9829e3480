// Package assets loads the textures used by the scene.
package assets

import "sync"

// LoadingManager tracks a group of loads and reports on their progress.
//
// Callbacks run on the goroutine that finished the item. OnStart fires when
// the first item of a batch begins, OnLoad when the last one completes.
type LoadingManager struct {
	OnStart    func(url string, loaded, total int)
	OnProgress func(url string, loaded, total int)
	OnLoad     func()
	OnError    func(url string, err error)

	mu      sync.Mutex
	loading bool
	loaded  int
	total   int
}

// ItemStart records the start of a load.
func (m *LoadingManager) ItemStart(url string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.total++
	first := !m.loading
	m.loading = true
	loaded, total := m.loaded, m.total
	m.mu.Unlock()

	if first && m.OnStart != nil {
		m.OnStart(url, loaded, total)
	}
}

// ItemEnd records the completion (successful or not) of a load.
func (m *LoadingManager) ItemEnd(url string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.loaded++
	loaded, total := m.loaded, m.total
	done := loaded == total
	if done {
		m.loading = false
	}
	m.mu.Unlock()

	if m.OnProgress != nil {
		m.OnProgress(url, loaded, total)
	}
	if done && m.OnLoad != nil {
		m.OnLoad()
	}
}

// ItemError reports a failed load. ItemEnd must still be called.
func (m *LoadingManager) ItemError(url string, err error) {
	if m == nil || m.OnError == nil {
		return
	}
	m.OnError(url, err)
}

// Progress returns the loaded and total item counts.
func (m *LoadingManager) Progress() (loaded, total int) {
	if m == nil {
		return 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded, m.total
}
