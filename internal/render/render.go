// Package render turns resolved seating records into the plain-text message
// delivered to guests: a monospace sketch of the hall with the guest's table
// highlighted, plus the seat-sorted list of tablemates. It consumes data
// records only and produces no markup.
package render

import (
	"fmt"
	"strings"

	"github.com/galaevents/seating-service/internal/model"
)

// RoomDiagram draws the hall grid with the stage on top and the entrance at
// the bottom. The table numbered highlight is bracketed: [07] instead of 07.
func RoomDiagram(tables []model.Table, highlight int) string {
	columns, rows := 0, 0
	byCell := map[[2]int]int{}
	for _, t := range tables {
		if t.GridColumn > columns {
			columns = t.GridColumn
		}
		if t.GridRow > rows {
			rows = t.GridRow
		}
		byCell[[2]int{t.GridRow, t.GridColumn}] = t.Number
	}

	rule := strings.Repeat("═", columns*4)
	var b strings.Builder
	b.WriteString("ESCENARIO\n")
	b.WriteString(rule)
	b.WriteString("\n\n")
	for r := 1; r <= rows; r++ {
		for c := 1; c <= columns; c++ {
			num, ok := byCell[[2]int{r, c}]
			if !ok {
				b.WriteString("    ")
				continue
			}
			if num == highlight {
				fmt.Fprintf(&b, "[%02d]", num)
			} else {
				fmt.Fprintf(&b, " %02d ", num)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n         ↑ ENTRADA")
	return b.String()
}

// Subject is the notification subject line.
func Subject(a model.Assignment) string {
	return fmt.Sprintf("Tu ubicación: Mesa %d - Asiento %d", a.Table.Number, *a.Attendee.Seat)
}

// Body renders the full plain-text message for one assignment. Tablemates are
// listed in the order given; the caller sorts them by seat.
func Body(a model.Assignment, allTables []model.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n", a.Attendee.FullName())
	b.WriteString("Tu ubicación para la cena de gala es:\n\n")
	fmt.Fprintf(&b, "    Mesa %d - Asiento %d\n\n", a.Table.Number, *a.Attendee.Seat)
	b.WriteString("Ubicación de tu mesa en la sala:\n\n")
	b.WriteString(RoomDiagram(allTables, a.Table.Number))
	b.WriteString("\n\nTus compañeros de mesa:\n")
	for _, m := range a.Tablemates {
		seat := 0
		if m.Seat != nil {
			seat = *m.Seat
		}
		fmt.Fprintf(&b, "  • %s (Asiento %d)\n", m.FullName(), seat)
	}
	b.WriteString("\n¡Te esperamos para una noche inolvidable!\n")
	return b.String()
}
