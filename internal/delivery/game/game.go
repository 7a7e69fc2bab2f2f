package game

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain"
	errs "goban/internal/errors"
	"goban/internal/httpresponse"
	gameuc "goban/internal/usecase/game"
	"goban/internal/utils"
)

type GameHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
	hub    *Hub
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.GameUseCase, hub *Hub) *GameHandler {
	return &GameHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
		hub:    hub,
	}
}

func (g *GameHandler) Router(r chi.Router) {
	r.Post("/reset", g.HandleReset)
	r.Post("/move", g.HandleMove)
	r.Post("/pass", g.HandlePass)
	r.Get("/turn", g.HandleTurn)
	r.Get("/canPlay", g.HandleCanPlay)
	r.Get("/board", g.HandleBoard)
	r.Get("/history", g.HandleHistory)
	r.Get("/sgf", g.HandleSGF)
	r.Get("/ws", g.HandleWebSocket)
}

func (g *GameHandler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, errs.ErrBoardSize),
		errors.Is(err, errs.ErrKomi),
		errors.Is(err, errs.ErrColor),
		errors.Is(err, errs.ErrPosition):
		g.log.Infof("%s: %v", op, err)
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrHistoryFull):
		g.log.Warnf("%s: %v", op, err)
		httpresponse.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrSessionClosed):
		g.log.Warnf("%s: %v", op, err)
		httpresponse.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		g.log.Errorf("%s: %v", op, err)
		httpresponse.WriteError(w, http.StatusInternalServerError, errs.ErrInternal.Error())
	}
}

func (g *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req domain.ResetRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Info("Reset: ", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	state, err := g.gameUC.Reset(r.Context(), req.Width, req.Height, req.Komi)
	if err != nil {
		g.writeError(w, "Reset", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req domain.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Info("Move: ", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}
	if req.Col == nil || req.Row == nil {
		g.writeError(w, "Move", errs.ErrPosition)
		return
	}

	result, err := g.gameUC.Play(r.Context(), *req.Col, *req.Row, req.Color)
	if err != nil {
		g.writeError(w, "Move", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, result)
}

func (g *GameHandler) HandlePass(w http.ResponseWriter, r *http.Request) {
	var req domain.PassRequest
	if err := utils.DecodeOptionalJSONRequest(r, &req); err != nil {
		g.log.Info("Pass: ", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc)
		return
	}

	result, err := g.gameUC.Pass(r.Context(), req.Color)
	if err != nil {
		g.writeError(w, "Pass", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, result)
}

func (g *GameHandler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	color, err := g.gameUC.Turn(r.Context())
	if err != nil {
		g.writeError(w, "Turn", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, domain.TurnResponse{Color: color})
}

func (g *GameHandler) HandleCanPlay(w http.ResponseWriter, r *http.Request) {
	col, err := utils.QueryInt(r, "col")
	if err != nil {
		g.writeError(w, "CanPlay", errors.Join(errs.ErrPosition, err))
		return
	}
	row, err := utils.QueryInt(r, "row")
	if err != nil {
		g.writeError(w, "CanPlay", errors.Join(errs.ErrPosition, err))
		return
	}

	ok, err := g.gameUC.CanPlay(r.Context(), col, row)
	if err != nil {
		g.writeError(w, "CanPlay", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, domain.CanPlayResponse{Playable: ok})
}

func (g *GameHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	state, err := g.gameUC.Board(r.Context())
	if err != nil {
		g.writeError(w, "Board", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

func (g *GameHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	moves, err := g.gameUC.History(r.Context())
	if err != nil {
		g.writeError(w, "History", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, domain.HistoryResponse{Moves: moves})
}

func (g *GameHandler) HandleSGF(w http.ResponseWriter, r *http.Request) {
	record, err := g.gameUC.SGF(r.Context())
	if err != nil {
		g.writeError(w, "SGF", err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, domain.SGFResponse{SGF: record})
}

// HandleWebSocket streams board events to a renderer. The first message is
// a full board snapshot, later ones carry only the changed points.
func (g *GameHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade error: ", err)
		return
	}
	defer conn.Close()

	c := g.hub.register(conn)
	defer g.hub.unregister(c)
	g.log.Infof("Renderer connected from %s", conn.RemoteAddr())

	state, err := g.gameUC.Board(r.Context())
	if err != nil {
		g.log.Error("snapshot for renderer: ", err)
		return
	}
	snapshot := domain.Event{
		SessionID: g.gameUC.SessionID(),
		Type:      domain.EventBoard,
		Board:     &state,
	}
	if err := conn.WriteJSON(snapshot); err != nil {
		g.log.Error("write snapshot: ", err)
		return
	}

	done := make(chan struct{})
	go func() {
		c.readLoop()
		close(done)
		// Unblock writeLoop.
		g.hub.unregister(c)
	}()

	if err := c.writeLoop(); err != nil {
		g.log.Info("renderer write: ", err)
	}
	conn.Close()
	<-done
	g.log.Infof("Renderer %s disconnected", conn.RemoteAddr())
}
