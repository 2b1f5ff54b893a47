package admin

import (
	"errors"
	"net/http"

	com "github.com/citizenwallet/govdash/internal/common"
	"github.com/citizenwallet/govdash/pkg/gov"
	"github.com/citizenwallet/govdash/pkg/queue"
)

type Networks interface {
	Lookup(name string) (gov.Network, error)
}

type Enqueuer interface {
	Enqueue(message gov.Message) error
}

type Service struct {
	networks Networks
	q        Enqueuer
}

func NewService(networks Networks, q Enqueuer) *Service {
	return &Service{
		networks: networks,
		q:        q,
	}
}

type refreshResponse struct {
	Snapshot string `json:"snapshot"`
}

// keyed kinds need a ref, the others are one snapshot per network.
var kinds = map[gov.SnapshotKind]bool{
	gov.SnapshotProposals:  false,
	gov.SnapshotParameters: false,
	gov.SnapshotProposal:   true,
	gov.SnapshotVoter:      true,
}

// Refresh godoc
//
//	@Summary		Refresh a snapshot
//	@Description	queue a snapshot to be fetched again from the subgraph
//	@Tags			admin
//	@Produce		json
//	@Param			network	query		string	true	"Network name"
//	@Param			kind	query		string	false	"proposals, proposal, parameters or voter"
//	@Param			ref		query		string	false	"Proposal id or voter address"
//	@Success		202		{object}	refreshResponse
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		401
//	@Failure		503		{object}	common.ErrorResponse
//	@Router			/api/admin/refresh [post]
func (s *Service) Refresh(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	name := q.Get("network")
	if name == "" {
		com.Error(w, http.StatusBadRequest, "Network is required")
		return
	}

	n, err := s.networks.Lookup(name)
	if err != nil {
		com.Error(w, http.StatusBadRequest, "Unknown network")
		return
	}

	kind := gov.SnapshotKind(q.Get("kind"))
	if kind == "" {
		kind = gov.SnapshotProposals
	}

	keyed, ok := kinds[kind]
	if !ok {
		com.Error(w, http.StatusBadRequest, "Unknown snapshot kind")
		return
	}

	ref := q.Get("ref")
	if keyed && ref == "" {
		com.Error(w, http.StatusBadRequest, "Ref is required")
		return
	}
	if !keyed {
		ref = ""
	}

	msg := gov.NewRefreshMessage(n, kind, ref)

	err = s.q.Enqueue(*msg)
	if errors.Is(err, queue.ErrQueueFull) {
		com.Error(w, http.StatusServiceUnavailable, "Refresh queue is full")
		return
	}
	if err != nil {
		com.ReportError(r, "Error queueing refresh", err)
		com.Error(w, http.StatusInternalServerError, "Failed to queue refresh")
		return
	}

	com.JSON(w, http.StatusAccepted, &refreshResponse{Snapshot: msg.ID})
}
