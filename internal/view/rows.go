package view

import (
	"caseview/internal/caseerr"
	"caseview/internal/model"
)

// Rows returns the table behind a node: its headers and one row per record.
// A chat thread id lists the messages of that thread.
func Rows(reg *model.Registry, nodeID string) ([]string, [][]string, error) {
	records, cols, err := recordsOf(reg, nodeID)
	if err != nil {
		return nil, nil, err
	}
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = model.Row(r.Record(), cols)
	}
	return headers, rows, nil
}

// Detail returns every field of the record shown at row of nodeID's table.
func Detail(reg *model.Registry, nodeID string, row int) (model.Record, error) {
	records, _, err := recordsOf(reg, nodeID)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= len(records) {
		return nil, caseerr.New(caseerr.LookupKind, "row %d out of range, %s has %d rows", row, nodeID, len(records)).At(nodeID, "")
	}
	return records[row].Record(), nil
}

func recordsOf(reg *model.Registry, nodeID string) ([]model.Recorder, []model.Column, error) {
	if reg == nil {
		return nil, nil, caseerr.New(caseerr.LookupKind, "no evidence loaded")
	}
	if c, ok := CategoryOf(nodeID); ok {
		return reg.Records(c), model.Columns(c), nil
	}
	if t, ok := reg.Threads.Lookup(nodeID); ok {
		return threadMessages(reg, t), model.ThreadColumns, nil
	}
	return nil, nil, caseerr.New(caseerr.LookupKind, "unknown node %q", nodeID).At(nodeID, "")
}

// threadMessages returns the chat messages listed by t, in thread order.
// Ids with no message are skipped.
func threadMessages(reg *model.Registry, t *model.Thread) []model.Recorder {
	var out []model.Recorder
	for _, id := range t.Messages {
		if m, ok := reg.ChatMessages.Lookup(id); ok {
			out = append(out, m)
		}
	}
	return out
}
