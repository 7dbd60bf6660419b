package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	trainingStore "trainbook/internal/adapters/storage/training"
	"trainbook/internal/application/listutil"
	"trainbook/internal/application/orchestrators"
	"trainbook/internal/application/projections"
	training "trainbook/internal/domain/training"
	"trainbook/internal/metrics"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	funcMap := template.FuncMap{
		"csrfToken": func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"hours": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
		"pct":   func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"periods": func() []string {
			return []string{training.PeriodMonth, training.PeriodQuarter, training.PeriodYear}
		},
		"trainingTypes": func() []string {
			return []string{training.TypeOnSite, training.TypeOnLine, training.TypeOffSite}
		},
		"providerTypes": func() []string {
			return []string{training.ProviderInternal, training.ProviderExternal}
		},
		"sortHeaderArgs": func(col, label, activeSort, activeDir, search, period, typ string, perPage int) map[string]string {
			nextDir := "asc"
			if col == activeSort && activeDir == "asc" {
				nextDir = "desc"
			}
			return map[string]string{
				"Col": col, "Label": label,
				"ActiveSort": activeSort, "ActiveDir": activeDir, "NextDir": nextDir,
				"Search": search, "Period": period, "Type": typ,
				"PerPage": fmt.Sprintf("%d", perPage),
			}
		},
		"paginationQuery": func(page int, sort, dir, search, period, typ string, perPage int) template.URL {
			q := fmt.Sprintf("page=%d", page)
			if sort != "" {
				q += "&sort=" + sort
			}
			if dir != "" {
				q += "&dir=" + dir
			}
			if search != "" {
				q += "&q=" + search
			}
			if period != "" {
				q += "&period=" + period
			}
			if typ != "" {
				q += "&type=" + typ
			}
			if perPage > 0 {
				q += fmt.Sprintf("&per_page=%d", perPage)
			}
			return template.URL(q)
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// registerRoutes attaches all application routes to the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/trainings", handleTrainings)
	mux.HandleFunc("/trainings/new", handleTrainingNewPage)
	mux.HandleFunc("/trainings/detail", handleTrainingDetail)
	mux.HandleFunc("/trainings/edit", handleTrainingEditPage)
	mux.HandleFunc("/trainings/update", handleTrainingUpdate)
	mux.HandleFunc("/trainings/delete", handleTrainingDelete)
	mux.HandleFunc("/participants", handleParticipants)
	mux.HandleFunc("/participants/update", handleParticipantUpdate)
	mux.HandleFunc("/participants/delete", handleParticipantDelete)
	mux.HandleFunc("/stats/participants", handleParticipantStats)
	mux.HandleFunc("/export", handleExport)
	mux.HandleFunc("/import", handleImport)
	mux.HandleFunc("/help", handleHelp)
	mux.HandleFunc("/perf", handleGetPerf)
	mux.HandleFunc("/healthz", handleHealthz)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/trainings", http.StatusSeeOther)
}

// parseTrainingForm builds a Training from an urlencoded form submission.
func parseTrainingForm(r *http.Request) (training.Training, error) {
	trainingCost, err := strconv.ParseFloat(r.FormValue("TrainingCost"), 64)
	if err != nil {
		return training.Training{}, fmt.Errorf("invalid training cost: %w", err)
	}
	otherCosts, err := strconv.ParseFloat(r.FormValue("OtherCosts"), 64)
	if err != nil {
		return training.Training{}, fmt.Errorf("invalid other costs: %w", err)
	}
	return training.Training{
		Period:       r.FormValue("Period"),
		Department:   r.FormValue("Department"),
		Name:         r.FormValue("Name"),
		Type:         r.FormValue("Type"),
		Provider:     r.FormValue("Provider"),
		ProviderType: r.FormValue("ProviderType"),
		TrainingCost: trainingCost,
		OtherCosts:   otherCosts,
		Category:     r.FormValue("Category"),
		DateRange: training.DateRange{
			StartDate: r.FormValue("StartDate"),
			EndDate:   r.FormValue("EndDate"),
		},
	}, nil
}

// handleTrainings handles both GET (list) and POST (create) for /trainings
func handleTrainings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		lp := listutil.ParseListParams(r.URL.Query(),
			[]string{"name", "department", "entry_date", "start_date", "total_cost"},
			[]string{"period", "type", "provider_type", "department"},
		)

		query := projections.TrainingListQuery{
			Period:       lp.Filters["period"],
			Type:         lp.Filters["type"],
			ProviderType: lp.Filters["provider_type"],
			Department:   lp.Filters["department"],
			Search:       lp.Search,
			Sort:         lp.Sort,
			Dir:          lp.Dir,
			Page:         lp.Page,
			PerPage:      lp.PerPage,
		}
		deps := projections.TrainingListDeps{TrainingStore: stores.TrainingStore}

		result, err := projections.QueryTrainingList(ctx, query, deps)
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "get_training_list.html", map[string]any{
				"Trainings":      result.Trainings,
				"PageInfo":       result.PageInfo,
				"Sort":           lp.Sort,
				"Dir":            lp.Dir,
				"Search":         lp.Search,
				"Period":         lp.Filters["period"],
				"Type":           lp.Filters["type"],
				"PerPageOptions": listutil.PerPageOptions,
				"HasFilters":     lp.Search != "" || lp.Filters["period"] != "" || lp.Filters["type"] != "",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	if r.Method == "POST" {
		var input training.Training

		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			parsed, err := parseTrainingForm(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			input = parsed
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		if err := input.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := stores.TrainingStore.AddTraining(ctx, input)
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/trainings", http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleTrainingNewPage renders the add-training form.
func handleTrainingNewPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "form_training.html", map[string]any{
		"Action": "/trainings",
	})
}

// handleTrainingDetail handles GET /trainings/detail?id=...
func handleTrainingDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	result, err := stores.TrainingStore.GetTrainingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, trainingStore.ErrNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "get_training_detail.html", map[string]any{
			"Training": result,
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleTrainingEditPage renders the edit form pre-filled with the current record.
func handleTrainingEditPage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	result, err := stores.TrainingStore.GetTrainingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, trainingStore.ErrNotFound) {
			http.Error(w, "training not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "form_training.html", map[string]any{
		"Action":   "/trainings/update?id=" + id,
		"Training": result,
	})
}

// handleTrainingUpdate handles POST /trainings/update?id=...
// An unknown id is a silent no-op, mirroring the store contract.
func handleTrainingUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input training.Training
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		parsed, err := parseTrainingForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		input = parsed
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		id = r.FormValue("id")
	}
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := stores.TrainingStore.UpdateTraining(ctx, id, input); err != nil {
		internalError(w, err)
		return
	}

	if isHTML {
		http.Redirect(w, r, "/trainings/detail?id="+id, http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTrainingDelete handles POST /trainings/delete
// Deleting an unknown id succeeds silently; participants go with the training.
func handleTrainingDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		id = r.FormValue("id")
	}
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := stores.TrainingStore.DeleteTraining(ctx, id); err != nil {
		internalError(w, err)
		return
	}

	if isHTML {
		http.Redirect(w, r, "/trainings", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseParticipantForm builds a Participant from an urlencoded form submission.
func parseParticipantForm(r *http.Request) (training.Participant, error) {
	hours, err := strconv.ParseFloat(r.FormValue("HoursAttended"), 64)
	if err != nil {
		return training.Participant{}, fmt.Errorf("invalid hours attended: %w", err)
	}
	return training.Participant{
		FirstName:         r.FormValue("FirstName"),
		LastName:          r.FormValue("LastName"),
		Department:        r.FormValue("Department"),
		HoursAttended:     hours,
		AttendanceChecked: r.FormValue("AttendanceChecked") == "on" || r.FormValue("AttendanceChecked") == "true",
	}, nil
}

// handleParticipants handles GET (list for a training) and POST (add) for /participants
func handleParticipants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		trainingID := r.URL.Query().Get("training_id")
		if trainingID == "" {
			http.Error(w, "training_id is required", http.StatusBadRequest)
			return
		}

		parent, err := stores.TrainingStore.GetTrainingByID(ctx, trainingID)
		if err != nil {
			if errors.Is(err, trainingStore.ErrNotFound) {
				http.Error(w, "training not found", http.StatusNotFound)
				return
			}
			internalError(w, err)
			return
		}

		participants, err := stores.TrainingStore.GetParticipantsByTraining(ctx, trainingID)
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "get_participants.html", map[string]any{
				"Training":     parent,
				"Participants": participants,
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(participants)
		return
	}

	if r.Method == "POST" {
		var input training.Participant
		var trainingID string

		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			trainingID = r.FormValue("training_id")
			parsed, err := parseParticipantForm(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			input = parsed
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
			trainingID = input.TrainingID
			if trainingID == "" {
				trainingID = r.URL.Query().Get("training_id")
			}
		}

		if trainingID == "" {
			http.Error(w, "training_id is required", http.StatusBadRequest)
			return
		}
		if err := input.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := stores.TrainingStore.AddParticipant(ctx, trainingID, input)
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/participants?training_id="+trainingID, http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleParticipantUpdate handles POST /participants/update
func handleParticipantUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input training.Participant
	var trainingID, participantID string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		trainingID = r.FormValue("training_id")
		participantID = r.FormValue("id")
		parsed, err := parseParticipantForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		input = parsed
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		trainingID = r.URL.Query().Get("training_id")
		participantID = r.URL.Query().Get("id")
		if trainingID == "" {
			trainingID = input.TrainingID
		}
		if participantID == "" {
			participantID = input.ID
		}
	}

	if trainingID == "" || participantID == "" {
		http.Error(w, "training_id and id are required", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := stores.TrainingStore.UpdateParticipant(ctx, trainingID, participantID, input); err != nil {
		internalError(w, err)
		return
	}

	if isHTML {
		http.Redirect(w, r, "/participants?training_id="+trainingID, http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleParticipantDelete handles POST /participants/delete
func handleParticipantDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	trainingID := r.FormValue("training_id")
	participantID := r.FormValue("id")
	if trainingID == "" {
		trainingID = r.URL.Query().Get("training_id")
	}
	if participantID == "" {
		participantID = r.URL.Query().Get("id")
	}
	if trainingID == "" || participantID == "" {
		http.Error(w, "training_id and id are required", http.StatusBadRequest)
		return
	}

	if err := stores.TrainingStore.DeleteParticipant(ctx, trainingID, participantID); err != nil {
		internalError(w, err)
		return
	}

	if isHTML {
		http.Redirect(w, r, "/participants?training_id="+trainingID, http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleParticipantStats handles GET /stats/participants
func handleParticipantStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := projections.ParticipantStatsDeps{TrainingStore: stores.TrainingStore}
	result, err := projections.QueryParticipantStats(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "get_participant_stats.html", map[string]any{
			"Participants": result.Participants,
			"Overall":      result.Overall,
			"Insights":     result.Insights,
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleExport handles GET /export: the full collection as a versioned
// JSON document download.
func handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	deps := orchestrators.ExportDataDeps{TrainingStore: stores.TrainingStore}
	doc, err := orchestrators.ExecuteExportData(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}
	payload, err := doc.Marshal()
	if err != nil {
		internalError(w, err)
		return
	}

	metrics.IncExport()
	filename := fmt.Sprintf("trainings_export_%s.json", timeNow().Format(training.DateLayout))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(payload)
}

// handleImport handles GET (upload form) and POST (perform import) for /import.
// The uploaded document replaces the whole collection; a document that fails
// the validation gate leaves current data untouched.
func handleImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		renderTemplate(w, r, "form_import.html", nil)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var reader io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()
		reader = file
	}

	deps := orchestrators.ImportDataDeps{TrainingStore: stores.TrainingStore}
	result, err := orchestrators.ExecuteImportData(ctx, orchestrators.ImportDataInput{Reader: reader}, deps)
	metrics.IncImport(err == nil)
	if err != nil {
		http.Error(w, "invalid import file: "+err.Error(), http.StatusBadRequest)
		return
	}

	if isHTML {
		http.Redirect(w, r, "/trainings", http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleHelp handles GET /help: usage notes rendered from markdown.
func handleHelp(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "help.html", map[string]any{
		"HelpText": helpText,
	})
}

const helpText = `# Training records

## Trainings

Each record describes one training: settlement period, department, name,
form (On-site, On-line, Off-site), provider and provider type, costs,
category, and the date range it ran. The total cost is always the sum of
the training cost and other costs and is recalculated on every save.

## Participants

Participants are attached to a single training. Record first and last
name, department, hours attended, and whether attendance was confirmed.
Deleting a training removes its participants with it.

## Statistics

The statistics page groups participants by first and last name across
all trainings. The same name in two trainings counts as one person; two
spellings count as two. The department shown is the one recorded most
recently.

## Export and import

Export downloads the entire collection as a JSON file, including
participants. Import replaces **all** current data with the contents of
an uploaded export file. Data lives in memory only: export before
stopping the application if you want to keep it.`

// handleGetPerf handles GET /perf: timing snapshot from the ring buffer.
func handleGetPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	minutes := 15
	if v := r.URL.Query().Get("minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			minutes = n
		}
	}
	if perfCollector == nil {
		http.Error(w, "perf collector not configured", http.StatusServiceUnavailable)
		return
	}

	snap := perfCollector.Snapshot(timeNow().Add(-time.Duration(minutes)*time.Minute), 10)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
