package sheets

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cotizador/internal/domain/entities"
	"cotizador/internal/usecase/interfaces"
	mock_interfaces "cotizador/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestStore(t *testing.T) (*SheetStore, *mock_interfaces.MockIValuesClient) {
	ctrl := gomock.NewController(t)
	client := mock_interfaces.NewMockIValuesClient(ctrl)
	b, _ := newTestBackoff(3)
	return NewSheetStore(client, DefaultSheetNames(), b, fixedClock{codecNow}), client
}

var allRanges = []string{"Clientes!A2:Z", "Materiales!A2:Z", "ManoDeObra!A2:Z", "Productos!A2:Z", "Cotizaciones!A2:Z"}

func TestSheetStore_ReadAll(t *testing.T) {
	t.Run("parses every sheet", func(t *testing.T) {
		store, client := newTestStore(t)
		client.EXPECT().BatchGet(gomock.Any(), allRanges).Return([]interfaces.ValueRange{
			{Range: allRanges[0], Values: [][]interface{}{{"1", "Acme"}, {"", "skip"}}},
			{Range: allRanges[1]},
			{Range: allRanges[2], Values: [][]interface{}{{"3", "MO-FAB-001", "Weld", "fabricacion", "h", 20}}},
			{Range: allRanges[3]},
			{Range: allRanges[4], Values: [][]interface{}{{"5", "COT-2025-001", "1"}}},
		}, nil)

		snap, err := store.ReadAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap.Clients) != 1 || len(snap.Labor) != 1 || len(snap.Quotes) != 1 || len(snap.Materials) != 0 {
			t.Fatalf("unexpected snapshot %+v", snap)
		}
		if snap.Labor[0].Category != entities.LaborFabrication || snap.Quotes[0].ClientID != 1 {
			t.Fatalf("unexpected decoded values %+v %+v", snap.Labor[0], snap.Quotes[0])
		}
	})

	t.Run("retries rate limit", func(t *testing.T) {
		store, client := newTestStore(t)
		gomock.InOrder(
			client.EXPECT().BatchGet(gomock.Any(), allRanges).Return(nil, &interfaces.RemoteStatusError{StatusCode: http.StatusTooManyRequests}),
			client.EXPECT().BatchGet(gomock.Any(), allRanges).Return(make([]interfaces.ValueRange, 5), nil),
		)
		if _, err := store.ReadAll(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unexpected range count", func(t *testing.T) {
		store, client := newTestStore(t)
		client.EXPECT().BatchGet(gomock.Any(), allRanges).Return(make([]interfaces.ValueRange, 2), nil)
		if _, err := store.ReadAll(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestSheetStore_WriteAll(t *testing.T) {
	snap := entities.Snapshot{
		Clients: []entities.Client{{ID: 1, Name: "Acme"}},
		Quotes:  []entities.Quote{{ID: 2, Number: "COT-2025-001", ClientID: 1}},
	}

	t.Run("clears then writes", func(t *testing.T) {
		store, client := newTestStore(t)
		gomock.InOrder(
			client.EXPECT().BatchClear(gomock.Any(), allRanges).Return(nil),
			client.EXPECT().BatchUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data []interfaces.ValueRange) error {
				if len(data) != 5 || data[0].Range != "Clientes!A2:Z" || len(data[0].Values) != 1 || len(data[4].Values) != 1 {
					t.Fatalf("unexpected batch %+v", data)
				}
				if len(data[4].Values[0]) != len(quoteHeader) {
					t.Fatalf("quote row has %d cells, want %d", len(data[4].Values[0]), len(quoteHeader))
				}
				return nil
			}),
		)
		if err := store.WriteAll(context.Background(), snap); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("clear failure skips write", func(t *testing.T) {
		store, client := newTestStore(t)
		client.EXPECT().BatchClear(gomock.Any(), allRanges).Return(errors.New("forbidden"))
		if err := store.WriteAll(context.Background(), snap); err == nil || err.Error() != "forbidden" {
			t.Fatalf("expected forbidden error, got %v", err)
		}
	})
}

func TestSheetStore_InitializeSheets(t *testing.T) {
	store, client := newTestStore(t)
	var got []string
	client.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, vr interfaces.ValueRange) error {
		got = append(got, vr.Range)
		return nil
	}).Times(5)

	if err := store.InitializeSheets(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Clientes!A1:H1", "Materiales!A1:G1", "ManoDeObra!A1:G1", "Productos!A1:H1", "Cotizaciones!A1:M1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range %d = %s, want %s", i, got[i], want[i])
		}
	}
}
