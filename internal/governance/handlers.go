package governance

import (
	"errors"
	"net/http"

	com "github.com/citizenwallet/govdash/internal/common"
	"github.com/citizenwallet/govdash/pkg/gov"
)

type Networks interface {
	Lookup(name string) (gov.Network, error)
}

type Service struct {
	networks Networks
	src      gov.Source
}

func NewService(networks Networks, src gov.Source) *Service {
	return &Service{
		networks: networks,
		src:      src,
	}
}

type proposalsResponse struct {
	Proposals []gov.ProposalSummary `json:"proposals"`
}

type parametersResponse struct {
	Parameters []gov.GovernanceParameters `json:"parameters"`
}

// network resolves the network query parameter, writing a 400 when it is
// missing or unknown.
func (s *Service) network(w http.ResponseWriter, r *http.Request) (gov.Network, bool) {
	name := r.URL.Query().Get("network")
	if name == "" {
		com.Error(w, http.StatusBadRequest, "Network is required")
		return gov.Network{}, false
	}

	n, err := s.networks.Lookup(name)
	if err != nil {
		com.Error(w, http.StatusBadRequest, "Unknown network")
		return gov.Network{}, false
	}

	return n, true
}

// GetProposals godoc
//
//	@Summary		Fetch proposals
//	@Description	get the latest proposals of a network, newest first
//	@Tags			governance
//	@Produce		json
//	@Param			network	query		string	true	"Network name"
//	@Success		200		{object}	proposalsResponse
//	@Failure		400
//	@Failure		500
//	@Router			/api/proposals [get]
func (s *Service) GetProposals(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(w, r)
	if !ok {
		return
	}

	proposals, err := s.src.Proposals(r.Context(), n)
	if err != nil {
		com.ReportError(r, "Error fetching proposals", err)
		com.Error(w, http.StatusInternalServerError, "Failed to fetch proposals")
		return
	}

	w.Header().Set("Cache-Control", com.CacheControlPublic)
	com.JSON(w, http.StatusOK, &proposalsResponse{Proposals: proposals})
}

// GetProposal godoc
//
//	@Summary		Fetch a proposal
//	@Description	get a proposal with its total deposit and every vote, newest first
//	@Tags			governance
//	@Produce		json
//	@Param			id		query		string	true	"Proposal ID"
//	@Param			network	query		string	true	"Network name"
//	@Success		200		{object}	gov.Proposal
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/api/proposal [get]
func (s *Service) GetProposal(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		com.Error(w, http.StatusBadRequest, "Proposal ID is required")
		return
	}

	n, ok := s.network(w, r)
	if !ok {
		return
	}

	p, err := s.src.Proposal(r.Context(), n, id)
	if errors.Is(err, gov.ErrProposalNotFound) {
		com.Error(w, http.StatusNotFound, "Proposal not found")
		return
	}
	if err != nil {
		com.ReportError(r, "Error fetching proposal", err)
		com.Error(w, http.StatusInternalServerError, "Failed to fetch proposal")
		return
	}

	w.Header().Set("Cache-Control", com.CacheControlPublic)
	com.JSON(w, http.StatusOK, p)
}

// GetGovernanceParameters godoc
//
//	@Summary		Fetch governance parameters
//	@Description	get every recorded governance parameter set, most recent first
//	@Tags			governance
//	@Produce		json
//	@Param			network	query		string	true	"Network name"
//	@Success		200		{object}	parametersResponse
//	@Failure		400
//	@Failure		500
//	@Router			/api/governance-parameters [get]
func (s *Service) GetGovernanceParameters(w http.ResponseWriter, r *http.Request) {
	n, ok := s.network(w, r)
	if !ok {
		return
	}

	params, err := s.src.GovernanceParameters(r.Context(), n)
	if err != nil {
		com.ReportError(r, "Error fetching governance parameters", err)
		com.Error(w, http.StatusInternalServerError, "Failed to fetch governance parameters")
		return
	}

	com.JSON(w, http.StatusOK, &parametersResponse{Parameters: params})
}

// GetVoter godoc
//
//	@Summary		Fetch a voter's history
//	@Description	get every vote cast by an address, newest first
//	@Tags			governance
//	@Produce		json
//	@Param			voter	query		string	true	"Voter address"
//	@Param			network	query		string	true	"Network name"
//	@Success		200		{array}		gov.VoterVote
//	@Failure		400
//	@Failure		500
//	@Router			/api/voter [get]
func (s *Service) GetVoter(w http.ResponseWriter, r *http.Request) {
	voter := r.URL.Query().Get("voter")
	if voter == "" || r.URL.Query().Get("network") == "" {
		com.Error(w, http.StatusBadRequest, "Missing voter or network parameter")
		return
	}

	n, ok := s.network(w, r)
	if !ok {
		return
	}

	votes, err := s.src.VoterVotes(r.Context(), n, voter)
	if err != nil {
		com.ReportError(r, "Error fetching voter data", err)
		com.Error(w, http.StatusInternalServerError, "Error fetching voter data")
		return
	}

	com.JSON(w, http.StatusOK, votes)
}
