package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"catalogue-recon/internal/catalogue/model"
	"catalogue-recon/internal/catalogue/service"
	"catalogue-recon/internal/config"
	"catalogue-recon/internal/fileio"
	"catalogue-recon/internal/store"
)

// Analyze runs the full reconciliation: supplier export upload vs the live
// operator catalogue. Store failures degrade the affected report sections
// instead of failing the request; the report always comes back.
func Analyze(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("supplier")
		if err != nil {
			http.Error(w, "missing supplier file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		mapping := mappingFromForm(r.FormValue)
		recs, err := fileio.ReadAnyMaps(file, header.Filename, mapping.HeaderRow)
		if err != nil {
			http.Error(w, "failed to read supplier file: "+err.Error(), http.StatusBadRequest)
			return
		}
		items := toItems(recs, mapping)
		skipLive := toBool(r.FormValue("skip_live"), false)

		report := analyze(r.Context(), cfg, log, items, skipLive)

		writeJSON(w, log, report)
		log.Info().
			Int("supplier_items", len(items)).
			Int("findings", len(report.Findings)).
			Str("verification", report.Verification.Status).
			Dur("elapsed", time.Since(start)).
			Msg("analyze done")
	}
}

// analyze is the pipeline behind the endpoint: stats -> live fetch ->
// indexes -> match -> verify -> assess.
func analyze(ctx context.Context, cfg config.Config, log zerolog.Logger, items []model.CatalogueItem, skipLive bool) model.AnalysisReport {
	report := model.AnalysisReport{
		SupplierStats: service.CollectStats(items),
	}

	expected := variantCodes(items)

	if skipLive {
		report.LiveSkipped = true
		report.Verification = service.VerifyLoad(expected, nil, false)
		report.Findings = service.Assess(report.SupplierStats, nil, model.SchemaCaps{}, false)
		return report
	}

	caps := model.SchemaCaps{}
	snapshot := store.Unavailable(nil)
	var operator []model.CatalogueItem

	ctx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	st, err := store.Connect(ctx, store.Config{
		URL:            cfg.StoreURL,
		MaxConnections: int32(cfg.StoreMaxConns),
		ConnectTimeout: cfg.StoreTimeout,
	})
	if err != nil {
		log.Warn().Err(err).Msg("operator store unreachable")
		report.LiveError = err.Error()
		snapshot = store.Unavailable(err)
	} else {
		defer st.Close()
		schema, err := st.DiscoverSchema(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("schema discovery failed")
			report.LiveError = err.Error()
			snapshot = store.Unavailable(err)
		} else {
			caps = schema.Caps
			if col, ok := schema.ResolveIdentifierColumn(model.SchemeVariantCode); ok {
				snapshot = st.FetchIdentifiers(ctx, col)
			} else {
				snapshot = store.Unavailable(errors.New("no identifier column discovered in target schema"))
			}
			operator, err = st.FetchCatalogue(ctx, cfg.StoreFetchLimit)
			if err != nil {
				log.Warn().Err(err).Msg("catalogue fetch failed")
				report.LiveError = err.Error()
			}
		}
	}

	report.Verification = service.VerifyLoad(expected, snapshot.Values, snapshot.Available)
	if !snapshot.Available {
		report.Verification.Reason = snapshot.Err
	}

	if len(operator) > 0 {
		opStats := service.CollectStats(operator)
		report.OperatorStats = &opStats

		idxA := service.BuildIndex(items,
			model.SchemeVariantCode, model.SchemePrimaryCode,
			model.SchemeGlobalCode, model.SchemeNormalizedName)
		idxB := service.BuildIndex(operator,
			model.SchemeVariantCode, model.SchemePrimaryCode,
			model.SchemeNormalizedName)
		report.Matches = service.Match(idxA, idxB, service.DefaultSchemePairs)
	}

	report.Findings = service.Assess(report.SupplierStats, report.Matches, caps, true)
	return report
}

// Drift compares two successive supplier snapshots and reports identifier
// churn between them.
func Drift(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		mapping := mappingFromForm(r.FormValue)

		prev, err := readVariantCodes(r, "previous", mapping)
		if err != nil {
			http.Error(w, "failed to read previous snapshot: "+err.Error(), http.StatusBadRequest)
			return
		}
		curr, err := readVariantCodes(r, "current", mapping)
		if err != nil {
			http.Error(w, "failed to read current snapshot: "+err.Error(), http.StatusBadRequest)
			return
		}

		drift := service.CompareSnapshots(prev, curr)
		writeJSON(w, log, drift)
		log.Info().
			Int("in_both", len(drift.InBoth)).
			Int("only_old", len(drift.OnlyOld)).
			Int("only_new", len(drift.OnlyNew)).
			Dur("elapsed", time.Since(start)).
			Msg("drift done")
	}
}

func readVariantCodes(r *http.Request, field string, mapping Mapping) (map[string]struct{}, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	recs, err := fileio.ReadAnyMaps(file, header.Filename, mapping.HeaderRow)
	if err != nil {
		return nil, err
	}
	return variantCodes(toItems(recs, mapping)), nil
}

func variantCodes(items []model.CatalogueItem) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.VariantCode != "" {
			out[it.VariantCode] = struct{}{}
		}
	}
	return out
}

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write json")
	}
}
