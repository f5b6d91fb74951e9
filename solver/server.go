package solver

import (
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/hadar-solver/hadar-go/hadarlog"
)

// Server answers the remote wire protocol of spec §6.2: POST a
// binary-serialized Study, query param token, get back a
// binary-serialized Result. Grounded on
// rwcarlsen-cloudlus/cloudlus/server_restful.go's handleJob
// GET/POST dispatch and httperror helper, simplified to the one
// request/response pair this facade needs (no job polling).
type Server struct {
	Workers int
	Token   string // empty disables the check
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := hadarlog.EnsureFromEnv(r.Context())

	reqID := r.Header.Get(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	logger := hadarlog.FromContext(ctx).With().Str("request_id", reqID).Logger()
	ctx = hadarlog.WithLogger(ctx, logger)

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Token != "" && r.URL.Query().Get("token") != s.Token {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	study, err := decodeStudy(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := SolveLP(ctx, study, s.Workers)
	if err != nil {
		logger.Error().Err(err).Msg("remote solve failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out, err := encodeResult(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(out)
}
