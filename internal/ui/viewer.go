package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tdep/internal/config"
	"tdep/internal/domain"
)

// ReportViewer displays failed and skipped units in an interactive TUI
type ReportViewer struct {
	config *config.Config
}

// NewReportViewer creates a new ReportViewer
func NewReportViewer(cfg *config.Config) *ReportViewer {
	return &ReportViewer{config: cfg}
}

// View displays the run's failed and skipped units in an interactive TUI
func (rv *ReportViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ All units passed!")
		return nil
	}

	// Track resolved units (by index) - load from JSON
	resolved := make(map[int]bool)
	for i, detail := range results.Details {
		if detail.Resolved {
			resolved[i] = true
		}
	}

	// Function to save resolved status to JSON file
	saveResolvedStatus := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}

		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		outputPath := rv.config.GetOutputPath()
		return os.WriteFile(outputPath, jsonData, 0644)
	}

	// Create the application
	app := tview.NewApplication()

	// Create list for non-passing units (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	// Function to get formatted text for a list item
	getListItemText := func(index int) string {
		detail := results.Details[index]
		name := detail.UnitID
		if name == "" {
			name = fmt.Sprintf("Unit %d", index+1)
		}

		marker := "[red]✗[white]"
		if detail.Outcome == domain.OutcomeSkipped {
			marker = "[yellow]→[white]"
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("%s [yellow]%d.[white] %s", marker, index+1, name)
	}

	// Function to update list item display with resolved status
	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range results.Details {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows unit info)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for unit details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// List on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := countUnresolved()
		headerText := fmt.Sprintf(" Non-passing Units (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(results.Details), unresolved)
		headerView.SetText(headerText)
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			detail := results.Details[index]
			statsView.SetText(rv.formatUnitStats(detail, index+1))
			detailsView.SetText(rv.formatUnitDetails(detail))
		}
	}

	// Set up keyboard handlers for list
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatUnitDetails formats a unit for display using tview color tags
func (rv *ReportViewer) formatUnitDetails(detail domain.UnitDetail) string {
	var builder strings.Builder

	if detail.Outcome == domain.OutcomeSkipped {
		fmt.Fprintf(&builder, "[yellow]→ Skipped: %s[white]\n\n", detail.UnitID)
		fmt.Fprintf(&builder, "[cyan]Reason:[white] %s\n\n", detail.SkipReason)
		builder.WriteString("[gray]The unit did not run because a dependency did not pass.[white]\n")
		return builder.String()
	}

	fmt.Fprintf(&builder, "[red]✗ Failed: %s[white]\n\n", detail.UnitID)

	if len(detail.Cases) > 0 {
		fmt.Fprintf(&builder, "[yellow]Failed cases:[white]\n")
		for _, c := range detail.Cases {
			fmt.Fprintf(&builder, "  [red]%s[white]", c.TestName)
			if c.File != "" {
				fmt.Fprintf(&builder, " [gray](%s:%d)[white]", c.File, c.Line)
			}
			builder.WriteString("\n")
			if c.Message != "" {
				fmt.Fprintf(&builder, "    %s\n", c.Message)
			}
		}
		builder.WriteString("\n")
	}

	if detail.Output != "" {
		fmt.Fprintf(&builder, "[yellow]Output:[white]\n%s\n", detail.Output)
	}
	return builder.String()
}

// formatUnitStats formats the stats header for a unit
func (rv *ReportViewer) formatUnitStats(detail domain.UnitDetail, number int) string {
	name := detail.UnitID
	if name == "" {
		name = fmt.Sprintf("Unit %d", number)
	}
	return fmt.Sprintf("[cyan]unit:[white] [yellow]%s[white] [cyan]outcome:[white] [yellow]%s[white]\n", name, detail.Outcome)
}
