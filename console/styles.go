package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// 样式绑定到输出 writer：管道 / buffer 输出纯文本，终端才有颜色
type styles struct {
	title, success, fail, muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:   r.NewStyle().Faint(true).TabWidth(lipgloss.NoTabConversion),
	}
}
