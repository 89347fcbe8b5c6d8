// Package clock 提供可替換的時間來源:
// System 為正式環境的系統時鐘, Manual 為測試用的可控時鐘.
package clock

import (
	"sync"
	"time"
)

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Manual 測試用時鐘: 每次 Now 回傳目前時間後前進固定的 step,
// 讓時間戳在測試中完全可預期.
type Manual struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManual 建立從 start 開始, 每次讀取後前進 step 的時鐘
func NewManual(start time.Time, step time.Duration) *Manual {
	return &Manual{now: start, step: step}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.now
	m.now = m.now.Add(m.step)
	return t
}

// Set 直接指定目前時間
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
