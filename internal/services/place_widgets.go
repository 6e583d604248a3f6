package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/ports"
)

// RenderFunc renders one picker; forms.MapWidget.Render satisfies it.
type RenderFunc func(out io.Writer, name string, value *domain.LatLong) error

type PlaceWidget struct {
	PlaceID  int
	Name     string
	Point    string
	Entrance string
}

type placeWidgetResult struct {
	index  int
	widget PlaceWidget
	err    error
}

// RenderPlaceWidgets renders the point and entrance pickers of every stored
// place. Renders run concurrently; results keep the repository order.
func RenderPlaceWidgets(ctx context.Context, repo ports.PlaceRepository, render RenderFunc) ([]PlaceWidget, error) {
	places, err := repo.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("render place widgets: list places: %w", err)
	}
	if len(places) == 0 {
		return []PlaceWidget{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 5)
	resultsCh := make(chan placeWidgetResult, len(places))
	var wg sync.WaitGroup

	for i, p := range places {
		wg.Add(1)
		go func(i int, p *domain.Place) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			if ctx.Err() != nil {
				resultsCh <- placeWidgetResult{index: i, err: ctx.Err()}
				return
			}

			var point, entrance bytes.Buffer
			if err := render(&point, fmt.Sprintf("point_%d", p.PlaceID), &p.Point); err != nil {
				resultsCh <- placeWidgetResult{index: i, err: fmt.Errorf("render place widgets: place_id=%d point: %w", p.PlaceID, err)}
				cancel()
				return
			}
			if err := render(&entrance, fmt.Sprintf("entrance_%d", p.PlaceID), p.Entrance); err != nil {
				resultsCh <- placeWidgetResult{index: i, err: fmt.Errorf("render place widgets: place_id=%d entrance: %w", p.PlaceID, err)}
				cancel()
				return
			}

			resultsCh <- placeWidgetResult{index: i, widget: PlaceWidget{
				PlaceID:  p.PlaceID,
				Name:     p.Name,
				Point:    point.String(),
				Entrance: entrance.String(),
			}}
		}(i, p)
	}

	wg.Wait()
	close(resultsCh)

	widgets := make([]PlaceWidget, len(places))
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			if firstErr == nil || errors.Is(firstErr, context.Canceled) {
				firstErr = res.err
			}
			continue
		}
		widgets[res.index] = res.widget
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return widgets, nil
}
