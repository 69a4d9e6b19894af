// Package dashboard implements the interactive machine health dashboard.
//
// One machine from the registry is selected at a time. The view shows its
// four metric cards with optimal/high/low status, a line chart per metric,
// and the maintenance overview.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: selected machine, animation timer, window size, popup and help state
//   - Update: key presses, mouse clicks, timer messages, popup close
//   - View: renders the Snapshot derived from the selected machine
//
// # Entry Transition
//
// Every selection, including re-selecting the current machine, restarts
// the entry transition. The previous bubbles timer is replaced by a new one
// with a fresh ID. The old timer's pending tick and timeout carry its stale
// ID, so they never touch the model and its tick chain ends there. Cards
// and charts render faded until the current timer times out.
//
// # Layout Modes
//
// The dashboard adapts to terminal width:
//
//	LayoutMinimal  (<80 cols)  - Single column cards and charts
//	LayoutCompact  (80-120)    - Cards two per row, charts stacked
//	LayoutStandard (120-160)   - Cards in one row, 2x2 chart grid
//	LayoutWide     (160+)      - As standard with taller charts
//
// # Keyboard Shortcuts
//
//	←/→, h/l, Tab   - Previous / next machine
//	1-9             - Jump to machine
//	↑/↓, j/k        - Scroll
//	p               - Manager profile
//	?               - Toggle full help
//	q, Ctrl+C       - Quit
package dashboard
