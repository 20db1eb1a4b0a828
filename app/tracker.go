package app

import (
	"sync"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/index"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"
)

// Tracker 进程内唯一的索引实例。索引本身不加锁，这里统一串行化：
// 写操作独占，查询共享
type Tracker struct {
	mu  sync.RWMutex
	idx *index.Table
}

func NewTracker(size int) *Tracker { return &Tracker{idx: index.New(size)} }

func (t *Tracker) Insert(it models.Item) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.idx.Insert(it)
}

func (t *Tracker) FindByID(id int) []models.Item {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.FindByID(id)
}

func (t *Tracker) FindByDescription(sub string) []models.Item {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.FindByDescription(sub)
}

func (t *Tracker) All() []models.Item {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.All()
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.Len()
}

// Size 桶数量，创建后不变
func (t *Tracker) Size() int { return t.idx.Size() }
