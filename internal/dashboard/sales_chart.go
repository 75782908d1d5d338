package dashboard

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/store"
)

type SalesChartPoint struct {
	Label string  `json:"label"` // dia / início da semana / início do mês
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type SalesChartGrandTotals struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type SalesChartResponse struct {
	Period      string                `json:"period"` // daily | weekly | monthly
	From        string                `json:"from"`
	To          string                `json:"to"`
	Points      []SalesChartPoint     `json:"points"`
	GrandTotals SalesChartGrandTotals `json:"grand_totals"`
}

// truncamento para o início do bucket (dia, semana começando na segunda, mês)
func bucketStart(period string, t time.Time) time.Time {
	loc := t.Location()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	switch period {
	case "weekly":
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case "monthly":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return day
	}
}

// GET /api/dashboard/sales-chart?period=daily&count=7
func SalesChartHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", "daily") // daily | weekly | monthly
		countStr := c.Query("count", "")

		var count int
		if countStr == "" {
			switch period {
			case "weekly":
				count = 8
			case "monthly":
				count = 12
			default:
				period = "daily"
				count = 7
			}
		} else {
			if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "count inválido")
			}
			switch period {
			case "weekly", "monthly":
			default:
				period = "daily"
			}
		}

		now := time.Now()
		end := bucketStart(period, now)
		var start time.Time
		switch period {
		case "weekly":
			start = end.AddDate(0, 0, -7*(count-1))
		case "monthly":
			start = end.AddDate(0, -(count - 1), 0)
		default:
			start = end.AddDate(0, 0, -(count - 1))
		}

		var sales []models.Sale
		st.View(func(state *store.State) {
			sales = append(sales, state.Sales...)
		})

		buckets := make(map[time.Time]*SalesChartPoint)
		for _, sale := range sales {
			b := bucketStart(period, sale.Timestamp)
			if b.Before(start) || b.After(end) {
				continue
			}
			agg, ok := buckets[b]
			if !ok {
				agg = &SalesChartPoint{Label: b.Format("2006-01-02")}
				buckets[b] = agg
			}
			agg.Count++
			agg.Total += sale.Total
		}

		// todos os buckets do intervalo, inclusive os vazios, em ordem
		points := make([]SalesChartPoint, 0, count)
		grand := SalesChartGrandTotals{}
		for b := start; !b.After(end); {
			if agg, ok := buckets[b]; ok {
				points = append(points, *agg)
				grand.Count += agg.Count
				grand.Total += agg.Total
			} else {
				points = append(points, SalesChartPoint{Label: b.Format("2006-01-02")})
			}
			switch period {
			case "weekly":
				b = b.AddDate(0, 0, 7)
			case "monthly":
				b = b.AddDate(0, 1, 0)
			default:
				b = b.AddDate(0, 0, 1)
			}
		}

		return c.JSON(SalesChartResponse{
			Period:      period,
			From:        start.Format("2006-01-02"),
			To:          end.Format("2006-01-02"),
			Points:      points,
			GrandTotals: grand,
		})
	}
}
