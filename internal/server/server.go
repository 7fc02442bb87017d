package server

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aeokit/aeograph/internal/config"
	"github.com/aeokit/aeograph/internal/schema"
	"github.com/aeokit/aeograph/internal/schema/model"
	"github.com/aeokit/aeograph/internal/schema/source"
	"github.com/aeokit/aeograph/internal/schema/validate"
)

// Server renders JSON-LD graphs for page states posted by the host CMS. The
// options value is swapped atomically by the config watcher.
type Server struct {
	mu       sync.RWMutex
	opts     *config.Options
	commerce source.ProductAdapter
}

// NewServer loads the options file (AEO_CONFIG overrides the default path)
// and applies environment overrides the way the rest of the configuration
// surface does.
func NewServer() *Server {
	cfgPath := os.Getenv("AEO_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/options.toml"
	}

	opts, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if siteURL := os.Getenv("AEO_SITE_URL"); siteURL != "" {
		opts.SiteURL = siteURL
	}
	if name := os.Getenv("AEO_COMPANY_NAME"); name != "" {
		opts.CompanyName = name
	}

	return &Server{opts: opts}
}

// NewServerWithOptions builds a server around an already loaded options
// value. Tests use this instead of the file-backed constructor.
func NewServerWithOptions(opts *config.Options) *Server {
	return &Server{opts: opts}
}

// SetCommerceAdapter injects the optional commerce collaborator.
func (s *Server) SetCommerceAdapter(adapter source.ProductAdapter) {
	s.commerce = adapter
}

// ReplaceOptions installs a freshly reloaded options value.
func (s *Server) ReplaceOptions(opts *config.Options) {
	s.mu.Lock()
	s.opts = opts
	s.mu.Unlock()
	log.Printf("Options reloaded")
}

func (s *Server) options() *config.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/render", s.Render)
	r.GET("/healthz", s.Health)

	return r
}

// RenderResponse carries the encoded graph plus the validation report. On
// validation failure JSONLD stays empty: a non-compliant graph is never
// emitted.
type RenderResponse struct {
	JSONLD                  string                 `json:"jsonld"`
	Validation              model.ValidationResult `json:"validation"`
	LocalBusinessSuppressed bool                   `json:"suppressedLocalBusiness"`
	LocalBusinessMissing    []string               `json:"missingFields,omitempty"`
}

func (s *Server) Render(c *gin.Context) {
	var state source.PageState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page state"})
		return
	}

	renderID := uuid.New().String()

	builder := schema.New(s.options(), &state, &state, s.commerce)
	result := builder.Build()

	resp := RenderResponse{
		LocalBusinessSuppressed: result.LocalBusinessSuppressed,
		LocalBusinessMissing:    result.LocalBusinessMissing,
	}
	if result.Document == nil {
		log.Printf("render %s: nothing to emit for %s", renderID, state.URL)
		resp.Validation = model.ValidationResult{IsValid: true, Errors: []string{}, Warnings: []string{}}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Validation = validate.Validate(result.Document)
	if !resp.Validation.IsValid {
		log.Printf("render %s: validation failed for %s: %v", renderID, state.URL, resp.Validation.Errors)
		c.JSON(http.StatusOK, resp)
		return
	}

	encoded, err := schema.EncodeJSONLD(result.Document)
	if err != nil {
		log.Printf("render %s: encoding failed: %v", renderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode graph"})
		return
	}
	resp.JSONLD = encoded

	log.Printf("render %s: emitted %d nodes for %s", renderID, graphSize(result.Document), state.URL)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func graphSize(doc model.Node) int {
	if list, ok := doc["@graph"].([]any); ok {
		return len(list)
	}
	return 0
}
