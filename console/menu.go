package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/models"

	"github.com/google/uuid"
)

// Store 菜单用到的索引操作（app.Tracker / index.Table 都满足）
type Store interface {
	Insert(it models.Item)
	FindByID(id int) []models.Item
	FindByDescription(sub string) []models.Item
	All() []models.Item
}

// AuditLog 菜单每登记一条写一行审计
type AuditLog interface {
	LogReport(ctx context.Context, l *models.ReportLog) error
}

type Menu struct {
	store Store
	audit AuditLog
	in    *bufio.Scanner
	out   io.Writer
	st    styles
}

func New(store Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{store: store, in: bufio.NewScanner(in), out: out, st: newStyles(out)}
}

// WithAudit 开启登记审计
func (m *Menu) WithAudit(a AuditLog) *Menu {
	m.audit = a
	return m
}

// Run 循环直到选 6 或输入结束
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			m.goodbye()
			return m.in.Err()
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = 0
		}

		switch choice {
		case 1, 2:
			if !m.add(ctx, choice == 1) {
				m.goodbye()
				return m.in.Err()
			}
		case 3:
			if !m.searchByID() {
				m.goodbye()
				return m.in.Err()
			}
		case 4:
			if !m.searchByDescription() {
				m.goodbye()
				return m.in.Err()
			}
		case 5:
			fmt.Fprintln(m.out, m.st.title.Render("All Lost and Found Items:"))
			m.printItems(m.store.All())
		case 6:
			m.goodbye()
			return nil
		default:
			fmt.Fprintln(m.out, m.st.fail.Render("Invalid choice. Please try again."))
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.st.title.Render("Lost and Found Tracker Menu:"))
	fmt.Fprintln(m.out, "1. Add Lost Item")
	fmt.Fprintln(m.out, "2. Add Found Item")
	fmt.Fprintln(m.out, "3. Search Item by ID")
	fmt.Fprintln(m.out, "4. Search Item by Description")
	fmt.Fprintln(m.out, "5. Display All Items")
	fmt.Fprintln(m.out, "6. Exit")
	fmt.Fprint(m.out, "Enter your choice: ")
}

func (m *Menu) goodbye() {
	fmt.Fprintln(m.out, "Exiting Lost and Found Tracker. Goodbye!")
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimRight(m.in.Text(), "\r"), true
}

func (m *Menu) ask(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	return m.readLine()
}

// askID 只有输入结束时 ok=false
func (m *Menu) askID(prompt string) (id int, valid, ok bool) {
	line, ok := m.ask(prompt)
	if !ok {
		return 0, false, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(m.out, m.st.fail.Render("Invalid ID."))
		return 0, false, true
	}
	return id, true, true
}

func (m *Menu) add(ctx context.Context, lost bool) bool {
	kind := "Found"
	if lost {
		kind = "Lost"
	}
	id, valid, ok := m.askID(fmt.Sprintf("Enter %s Item ID: ", kind))
	if !ok {
		return false
	}
	if !valid {
		return true
	}

	it := models.Item{ID: id, IsLost: lost}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter Description: ", &it.Description},
		{"Enter Location: ", &it.Location},
		{"Enter Date (YYYY-MM-DD): ", &it.Date},
		{"Reported By (optional): ", &it.ReportedBy},
		{"Contact Info (optional): ", &it.ContactInfo},
		{"Tags (optional): ", &it.Tags},
		{"Notes (optional): ", &it.Notes},
	}
	for _, f := range fields {
		v, ok := m.ask(f.prompt)
		if !ok {
			return false
		}
		*f.dst = v
	}

	m.store.Insert(it)
	if m.audit != nil {
		l := &models.ReportLog{
			ID:          uuid.NewString(),
			ItemID:      it.ID,
			Description: it.Description,
			IsLost:      it.IsLost,
			Source:      models.SourceConsole,
		}
		if err := m.audit.LogReport(ctx, l); err != nil {
			log.Printf("audit report id=%d: %v", it.ID, err)
		}
	}
	fmt.Fprintln(m.out, m.st.success.Render(kind+" item added successfully."))
	return true
}

func (m *Menu) searchByID() bool {
	id, valid, ok := m.askID("Enter Item ID to search: ")
	if !ok {
		return false
	}
	if !valid {
		return true
	}
	results := m.store.FindByID(id)
	if len(results) == 0 {
		fmt.Fprintln(m.out, m.st.muted.Render(fmt.Sprintf("No items found with ID %d.", id)))
		return true
	}
	m.printItems(results)
	return true
}

func (m *Menu) searchByDescription() bool {
	kw, ok := m.ask("Enter Description keyword to search: ")
	if !ok {
		return false
	}
	results := m.store.FindByDescription(kw)
	if len(results) == 0 {
		// 关键字原样回显，只给固定前缀上样式
		fmt.Fprintf(m.out, "%s \"%s\".\n", m.st.muted.Render("No items found matching description"), kw)
		return true
	}
	m.printItems(results)
	return true
}

func (m *Menu) printItems(items []models.Item) {
	for _, it := range items {
		fmt.Fprintln(m.out, FormatItem(it))
	}
}

// FormatItem 一条记录一行；可选字段非空才输出
func FormatItem(it models.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d, Description: %s, Location: %s, Date: %s, Type: %s",
		it.ID, it.Description, it.Location, it.Date, it.Kind())
	for _, f := range []struct{ label, v string }{
		{"Reported By", it.ReportedBy},
		{"Contact Info", it.ContactInfo},
		{"Tags", it.Tags},
		{"Notes", it.Notes},
	} {
		if f.v != "" {
			fmt.Fprintf(&b, ", %s: %s", f.label, f.v)
		}
	}
	return b.String()
}
