// models/item.go
package models

// Item 一条失物/招领登记。入库后不可修改、不可删除。
type Item struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`   // 原样保存，不做日期校验
	IsLost      bool   `json:"isLost"` // true = 丢失，false = 拾到
	ReportedBy  string `json:"reportedBy"`
	ContactInfo string `json:"contactInfo"`
	Tags        string `json:"tags"`
	Notes       string `json:"notes"`
}

func (it Item) Kind() string {
	if it.IsLost {
		return "Lost"
	}
	return "Found"
}
