package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	com "github.com/citizenwallet/govdash/internal/common"
	"github.com/citizenwallet/govdash/internal/governance"
	"github.com/citizenwallet/govdash/pkg/gov"
	"github.com/go-chi/chi/v5"
)

const (
	proposalsPerPage = 15
	votesPerPage     = 20
)

//go:embed templates/*.html
var templateFS embed.FS

type Networks interface {
	Lookup(name string) (gov.Network, error)
	All() []gov.Network
	Default() gov.Network
}

type Service struct {
	networks Networks
	src      gov.Source
	pages    map[string]*template.Template

	now func() time.Time
}

func NewService(networks Networks, src gov.Source) *Service {
	pages := map[string]*template.Template{}
	for _, page := range []string{"about", "network", "proposal", "voter", "parameters", "error"} {
		pages[page] = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html"))
	}

	return &Service{
		networks: networks,
		src:      src,
		pages:    pages,
		now:      time.Now,
	}
}

type layout struct {
	Title    string
	Network  *gov.Network
	Networks []gov.Network
	Content  any
}

type errorPage struct {
	Status  int
	Message string
}

func (s *Service) render(w http.ResponseWriter, status int, page, title string, n *gov.Network, content any) {
	var buf bytes.Buffer
	err := s.pages[page].Execute(&buf, &layout{
		Title:    title,
		Network:  n,
		Networks: s.networks.All(),
		Content:  content,
	})
	if err != nil {
		log.Default().Println("failed to render ", page, ": ", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Service) renderError(w http.ResponseWriter, status int, n *gov.Network, message string) {
	s.render(w, status, "error", message, n, &errorPage{Status: status, Message: message})
}

// network resolves the {network} url param, rendering a 404 when unknown.
func (s *Service) network(w http.ResponseWriter, r *http.Request) (*gov.Network, bool) {
	n, err := s.networks.Lookup(chi.URLParam(r, "network"))
	if err != nil {
		s.renderError(w, http.StatusNotFound, nil, "Unknown network")
		return nil, false
	}

	return &n, true
}

// Root redirects to the default network.
func (s *Service) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+s.networks.Default().Name, http.StatusFound)
}

func (s *Service) About(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "about", "About", nil, nil)
}

type proposalRow struct {
	ID            string
	Title         string
	Type          string
	Status        string
	VotingStart   int64
	VotingEnd     int64
	RemainingDays int
}

type networkPage struct {
	Network gov.Network
	Summary governance.Summary
	Live    []proposalRow
	Rows    []proposalRow
	Types   []string

	Type  string
	Query string

	Page    com.Page
	PrevURL string
	NextURL string
}

// Network renders the proposals overview of a network. The table can be
// filtered by type and title and is paginated.
func (s *Service) Network(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(w, r)
	if !ok {
		return
	}

	proposals, err := s.src.Proposals(r.Context(), *n)
	if err != nil {
		com.ReportError(r, "Error fetching proposals", err)
		s.renderError(w, http.StatusBadGateway, n, "Failed to fetch proposals")
		return
	}

	now := s.now()

	rows := make([]proposalRow, 0, len(proposals))
	for _, p := range proposals {
		rows = append(rows, proposalRow{
			ID:            p.ID,
			Title:         p.Title,
			Type:          governance.ProposalType(p.Messages),
			Status:        p.Status,
			VotingStart:   p.VotingStartTime,
			VotingEnd:     p.VotingEndTime,
			RemainingDays: governance.RemainingDays(time.UnixMilli(p.VotingEndTime), now),
		})
	}

	q := r.URL.Query()
	typ := q.Get("type")
	query := strings.TrimSpace(q.Get("title"))

	filtered := com.Filter(rows, func(p proposalRow) bool {
		if typ != "" && typ != "all" && p.Type != typ {
			return false
		}
		return query == "" || strings.Contains(strings.ToLower(p.Title), strings.ToLower(query))
	})

	pageRows, page := com.Paginate(filtered, com.PageParam(q), proposalsPerPage)

	content := &networkPage{
		Network: *n,
		Summary: governance.Summarize(proposals),
		Live:    com.Filter(rows, func(p proposalRow) bool { return governance.IsLive(p.Status) }),
		Rows:    pageRows,
		Types:   com.Unique(rows, func(p proposalRow) string { return p.Type }),
		Type:    typ,
		Query:   query,
		Page:    page,
		PrevURL: com.PageURL(r.URL.Path, q, page.Number-1),
		NextURL: com.PageURL(r.URL.Path, q, page.Number+1),
	}

	s.render(w, http.StatusOK, "network", "Proposals", n, content)
}

type proposalPage struct {
	Network  gov.Network
	Proposal *gov.Proposal
	Type     string
	Tally    governance.Tally
	Summary  template.HTML
	Votes    []gov.Vote

	Page    com.Page
	PrevURL string
	NextURL string
}

func (s *Service) Proposal(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(w, r)
	if !ok {
		return
	}

	p, err := s.src.Proposal(r.Context(), *n, chi.URLParam(r, "id"))
	if errors.Is(err, gov.ErrProposalNotFound) {
		s.renderError(w, http.StatusNotFound, n, "Proposal not found")
		return
	}
	if err != nil {
		com.ReportError(r, "Error fetching proposal", err)
		s.renderError(w, http.StatusBadGateway, n, "Failed to fetch proposal")
		return
	}

	q := r.URL.Query()
	votes, page := com.Paginate(p.Votes, com.PageParam(q), votesPerPage)

	content := &proposalPage{
		Network:  *n,
		Proposal: p,
		Type:     governance.ProposalType(p.Messages),
		Tally:    governance.CountVotes(p.Votes),
		Summary:  renderSummary(p.Summary),
		Votes:    votes,
		Page:     page,
		PrevURL:  com.PageURL(r.URL.Path, q, page.Number-1),
		NextURL:  com.PageURL(r.URL.Path, q, page.Number+1),
	}

	s.render(w, http.StatusOK, "proposal", "#"+p.ID+" "+p.Title, n, content)
}

type voterPage struct {
	Network gov.Network
	Address string
	Votes   []gov.VoterVote

	Page    com.Page
	PrevURL string
	NextURL string
}

func (s *Service) Voter(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(w, r)
	if !ok {
		return
	}

	addr := chi.URLParam(r, "id")

	all, err := s.src.VoterVotes(r.Context(), *n, addr)
	if err != nil {
		com.ReportError(r, "Error fetching voter data", err)
		s.renderError(w, http.StatusBadGateway, n, "Error fetching voter data")
		return
	}

	q := r.URL.Query()
	votes, page := com.Paginate(all, com.PageParam(q), votesPerPage)

	content := &voterPage{
		Network: *n,
		Address: addr,
		Votes:   votes,
		Page:    page,
		PrevURL: com.PageURL(r.URL.Path, q, page.Number-1),
		NextURL: com.PageURL(r.URL.Path, q, page.Number+1),
	}

	s.render(w, http.StatusOK, "voter", addr, n, content)
}

type parametersPage struct {
	Latest *gov.GovernanceParameters

	MaxDepositPeriod      string
	VotingPeriod          string
	ExpeditedVotingPeriod string
	BlockTime             string
}

// Parameters renders the most recent governance parameters of a network.
func (s *Service) Parameters(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(w, r)
	if !ok {
		return
	}

	params, err := s.src.GovernanceParameters(r.Context(), *n)
	if err != nil {
		com.ReportError(r, "Error fetching governance parameters", err)
		s.renderError(w, http.StatusBadGateway, n, "Failed to fetch governance parameters")
		return
	}

	content := &parametersPage{}
	if len(params) > 0 {
		latest := params[0]
		content.Latest = &latest
		content.MaxDepositPeriod = governance.NanosToDays(latest.DepositParams.MaxDepositPeriod)
		content.VotingPeriod = governance.NanosToDays(latest.VotingParams.VotingPeriod)
		content.ExpeditedVotingPeriod = governance.NanosToDays(latest.VotingParams.ExpeditedVotingPeriod)
		content.BlockTime = time.UnixMilli(latest.Block.Timestamp).UTC().Format(blockTimeLayout)
	}

	s.render(w, http.StatusOK, "parameters", "Governance Parameters", n, content)
}
