package ui

import (
	"fmt"
	"strings"
)

// PageItem is one element of the pagination control.
type PageItem struct {
	Kind     string // "prev", "page", "ellipsis", "next"
	Page     int
	Active   bool
	Disabled bool
}

// PageItems derives the pagination controls: Previous/Next plus page links
// using the windowing rule. The first and last page and current ± 1 are
// always shown, and each gap collapses into a single ellipsis. With one
// page or less the control disappears entirely.
func (s State) PageItems() []PageItem {
	total := s.TotalPages()
	if total <= 1 {
		return nil
	}

	items := []PageItem{{Kind: "prev", Page: s.CurrentPage - 1, Disabled: s.CurrentPage == 1}}
	for i := 1; i <= total; i++ {
		switch {
		case i == 1 || i == total || (i >= s.CurrentPage-1 && i <= s.CurrentPage+1):
			items = append(items, PageItem{Kind: "page", Page: i, Active: i == s.CurrentPage})
		case i == s.CurrentPage-2 || i == s.CurrentPage+2:
			items = append(items, PageItem{Kind: "ellipsis", Disabled: true})
		}
	}
	return append(items, PageItem{Kind: "next", Page: s.CurrentPage + 1, Disabled: s.CurrentPage == total})
}

// RenderPagination renders the pagination control as list items.
func RenderPagination(s State) string {
	items := s.PageItems()
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		switch item.Kind {
		case "prev":
			fmt.Fprintf(&b, `<li class="page-item%s"><a class="page-link" href="#" data-page="%d"><i class="fas fa-chevron-left"></i></a></li>`,
				disabledClass(item.Disabled), item.Page)
		case "next":
			fmt.Fprintf(&b, `<li class="page-item%s"><a class="page-link" href="#" data-page="%d"><i class="fas fa-chevron-right"></i></a></li>`,
				disabledClass(item.Disabled), item.Page)
		case "ellipsis":
			b.WriteString(`<li class="page-item disabled"><span class="page-link">...</span></li>`)
		default:
			active := ""
			if item.Active {
				active = " active"
			}
			fmt.Fprintf(&b, `<li class="page-item%s"><a class="page-link" href="#" data-page="%d">%d</a></li>`,
				active, item.Page, item.Page)
		}
	}
	return b.String()
}

func disabledClass(disabled bool) string {
	if disabled {
		return " disabled"
	}
	return ""
}
