// Shared helpers for platboard CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/platboard/internal/activity"
	"github.com/mesh-intelligence/platboard/internal/auth"
	"github.com/mesh-intelligence/platboard/internal/sqlite"
	"github.com/mesh-intelligence/platboard/internal/workflow"
	"github.com/mesh-intelligence/platboard/pkg/types"
)

// app bundles the attached record store with the services built over it.
type app struct {
	store    *sqlite.Store
	log      *activity.Log
	workflow *workflow.Controller
	auth     *auth.Service
}

// openApp resolves the data directory, attaches the SQLite record store,
// and wires the services. The caller must defer app.close().
func openApp() (*app, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	log := activity.NewLog(store)
	return &app{
		store:    store,
		log:      log,
		workflow: workflow.NewController(store, log),
		auth:     auth.NewService(store),
	}, nil
}

func (a *app) close() {
	_ = a.store.Detach()
}

// requireSession returns the signed-in account or an error telling the user
// to sign in. Survey commands are gated on an active session.
func (a *app) requireSession() (types.Account, error) {
	account, err := a.auth.Current()
	if err != nil {
		return types.Account{}, fmt.Errorf("sign in first (platboard login): %w", err)
	}
	return account, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printSurvey writes a human-readable card for one survey.
func printSurvey(s types.Survey) {
	fmt.Printf("%s  %s\n", s.SurveyID, s.ApplicantName)
	fmt.Printf("  stage:     %s\n", s.Stage)
	fmt.Printf("  type:      %s\n", s.SurveyType)
	fmt.Printf("  parcel:    %s\n", s.ParcelNumber)
	if s.SubmittedDate != "" {
		fmt.Printf("  submitted: %s\n", s.SubmittedDate)
	}
	if s.ApplicantEmail != "" || s.ApplicantPhone != "" {
		fmt.Printf("  contact:   %s %s\n", s.ApplicantEmail, s.ApplicantPhone)
	}
	if s.Notes != "" {
		fmt.Printf("  notes:     %s\n", s.Notes)
	}
	if s.PDFName != "" {
		fmt.Printf("  pdf:       %s (updated %s)\n", s.PDFName, s.PDFUpdatedAt.Format("2006-01-02 15:04"))
	}
}

// readUpload reads the file at path into a FileUpload. The media type is
// declared from the file extension; content is never sniffed, so the
// workflow's PDF check sees exactly what the name claims.
func readUpload(path string) (*types.FileUpload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}

	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}

	return &types.FileUpload{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Content:   content,
	}, nil
}
