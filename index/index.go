// index/index.go
package index

import (
	"strings"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"
)

// DefaultSize 未配置时的桶数
const DefaultSize = 10

// Table 定长桶 + 链式存储，按 id 取模分桶，桶内保持插入顺序。
// 本身不加锁，多协程共享时由调用方串行化（见 app.Tracker）
type Table struct {
	buckets [][]models.Item
	n       int
}

// New size <= 0 时用 DefaultSize；桶数之后不再变化
func New(size int) *Table {
	if size <= 0 {
		size = DefaultSize
	}
	return &Table{buckets: make([][]models.Item, size)}
}

func (t *Table) Size() int { return len(t.buckets) }

// Len 已存记录数
func (t *Table) Len() int { return t.n }

// Bucket id 所在的桶。负数 id 取非负余数，保证落在表内
func (t *Table) Bucket(id int) int {
	b := len(t.buckets)
	return ((id % b) + b) % b
}

// Insert 追加到对应桶尾部，不去重
func (t *Table) Insert(item models.Item) {
	i := t.Bucket(item.ID)
	t.buckets[i] = append(t.buckets[i], item)
	t.n++
}

// FindByID 只扫 id 所在的桶，返回 id 完全相等的记录（按插入顺序，副本）
func (t *Table) FindByID(id int) []models.Item {
	out := []models.Item{}
	for _, it := range t.buckets[t.Bucket(id)] {
		if it.ID == id {
			out = append(out, it)
		}
	}
	return out
}

// FindByDescription 全表扫描，桶序 + 插入序；区分大小写，空串匹配全部
func (t *Table) FindByDescription(sub string) []models.Item {
	return t.collect(func(it *models.Item) bool {
		return strings.Contains(it.Description, sub)
	})
}

// All 全部记录，顺序同 FindByDescription
func (t *Table) All() []models.Item {
	return t.collect(func(*models.Item) bool { return true })
}

func (t *Table) collect(keep func(*models.Item) bool) []models.Item {
	out := []models.Item{}
	for _, chain := range t.buckets {
		for i := range chain {
			if keep(&chain[i]) {
				out = append(out, chain[i])
			}
		}
	}
	return out
}
