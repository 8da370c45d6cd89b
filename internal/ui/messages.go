package ui

// pagerMsg contains the result of showing the selection in the pager
type pagerMsg struct {
	err error
}
