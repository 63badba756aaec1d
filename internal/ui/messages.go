package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/swdex/internal/session"
)

// fetchSettledMsg delivers the holder's final status to the update loop
type fetchSettledMsg struct {
	status session.Status
}

// waitForFetch blocks on the holder off the update loop and reports back
// once the fetch has settled
func waitForFetch(holder *session.Holder) tea.Cmd {
	return func() tea.Msg {
		<-holder.Done()
		return fetchSettledMsg{status: holder.Status()}
	}
}
