package googlesheets

import (
	"context"
	"errors"
	"fmt"

	"cotizador/internal/usecase/interfaces"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ValuesClient talks to the values endpoints of one spreadsheet.
//
// Writes use RAW input so text cells (ids, timestamps, JSON) are stored
// exactly as sent instead of being parsed as numbers or dates.
type ValuesClient struct {
	srv           *sheets.Service
	spreadsheetID string
}

var _ interfaces.IValuesClient = (*ValuesClient)(nil)

func NewValuesClient(ctx context.Context, spreadsheetID, credentialsFile string) (*ValuesClient, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &ValuesClient{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (c *ValuesClient) BatchGet(ctx context.Context, ranges []string) ([]interfaces.ValueRange, error) {
	resp, err := c.srv.Spreadsheets.Values.BatchGet(c.spreadsheetID).
		Ranges(ranges...).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]interfaces.ValueRange, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		out = append(out, interfaces.ValueRange{Range: vr.Range, Values: vr.Values})
	}
	return out, nil
}

func (c *ValuesClient) BatchUpdate(ctx context.Context, data []interfaces.ValueRange) error {
	req := &sheets.BatchUpdateValuesRequest{ValueInputOption: "RAW"}
	for _, d := range data {
		if len(d.Values) == 0 {
			continue
		}
		req.Data = append(req.Data, &sheets.ValueRange{Range: d.Range, Values: d.Values})
	}
	if len(req.Data) == 0 {
		return nil
	}
	_, err := c.srv.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	return wrapError(err)
}

func (c *ValuesClient) BatchClear(ctx context.Context, ranges []string) error {
	_, err := c.srv.Spreadsheets.Values.BatchClear(c.spreadsheetID, &sheets.BatchClearValuesRequest{Ranges: ranges}).
		Context(ctx).
		Do()
	return wrapError(err)
}

func (c *ValuesClient) Update(ctx context.Context, data interfaces.ValueRange) error {
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, data.Range, &sheets.ValueRange{Values: data.Values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return wrapError(err)
}

// wrapError exposes the HTTP status of API errors so callers can tell rate
// limits apart from other failures.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &interfaces.RemoteStatusError{StatusCode: gerr.Code, Message: gerr.Message, Err: err}
	}
	return err
}
