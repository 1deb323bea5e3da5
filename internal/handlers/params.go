package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/nimasrn/bank-records/internal/apperr"
	"github.com/nimasrn/bank-records/internal/model"
	xhttp "github.com/nimasrn/bank-records/pkg/http"
	"github.com/shopspring/decimal"
)

const (
	defaultPage    = 0
	defaultSize    = 10
	defaultSortBy  = "id"
	defaultSortDir = "asc"
)

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	return json.Unmarshal(ctx.PostBody(), dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

// writeError maps the error onto its HTTP status and renders the
// message as a JSON error body.
func writeError(ctx *xhttp.RequestCtx, err error) {
	writeJSON(ctx, apperr.StatusCode(err), map[string]string{"error": err.Error()})
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

// paramInt64 reads a path segment captured by the router.
func paramInt64(ctx *xhttp.RequestCtx, name string) (int64, error) {
	raw, _ := ctx.UserValue(name).(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.InvalidArgument("%s:%s", name, raw)
	}
	return id, nil
}

func paramString(ctx *xhttp.RequestCtx, name string) (string, error) {
	raw, _ := ctx.UserValue(name).(string)
	if raw == "" {
		return "", apperr.InvalidArgument("%s must not be empty", name)
	}
	return raw, nil
}

func queryDecimal(ctx *xhttp.RequestCtx, key string) (decimal.Decimal, error) {
	raw := query(ctx, key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperr.InvalidArgument("%s:%s", key, raw)
	}
	return d, nil
}

// queryTimeRange reads the from and to query parameters. Either
// RFC3339 or a bare date is accepted; a bare date means midnight UTC.
func queryTimeRange(ctx *xhttp.RequestCtx) (time.Time, time.Time, error) {
	from, err := parseTime(query(ctx, "from"))
	if err != nil {
		return time.Time{}, time.Time{}, apperr.InvalidArgument("from:%s", query(ctx, "from"))
	}
	to, err := parseTime(query(ctx, "to"))
	if err != nil {
		return time.Time{}, time.Time{}, apperr.InvalidArgument("to:%s", query(ctx, "to"))
	}
	return from, to, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parsePageRequest builds paging from the page, size, sort_by and
// sort_dir query parameters, falling back to the first page of ten
// rows sorted by id ascending.
func parsePageRequest(ctx *xhttp.RequestCtx) (model.PageRequest, error) {
	page := defaultPage
	if v := query(ctx, "page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return model.PageRequest{}, apperr.InvalidArgument("page:%s", v)
		}
		page = n
	}
	size := defaultSize
	if v := query(ctx, "size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return model.PageRequest{}, apperr.InvalidArgument("size:%s", v)
		}
		size = n
	}
	sortBy := defaultSortBy
	if v := query(ctx, "sort_by"); v != "" {
		sortBy = v
	}
	sortDir := defaultSortDir
	if v := query(ctx, "sort_dir"); v != "" {
		sortDir = v
	}
	return model.NewPageRequest(page, size, sortBy, sortDir)
}
