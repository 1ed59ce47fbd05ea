package http

import (
	"net/http"
	"time"

	"github.com/campus-hub/community-service/internal/service"
	httpmw "github.com/campus-hub/community-service/internal/transport/http/middleware"
	"github.com/campus-hub/community-service/internal/transport/ws"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, memberSvc *service.MemberService, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(middlewareChi.Recoverer)

	// WS endpoint
	r.Get("/ws/rooms/{id}", wsServer.HandleWS)

	// Все маршруты требуют access_token и user_id
	r.Group(func(pr chi.Router) {
		pr.Use(httpmw.AuthMiddleware)
		pr.Use(httpmw.HeartbeatMiddleware(memberSvc))
		pr.Use(middlewareChi.Timeout(30 * time.Second))

		pr.Route("/rooms", func(rm chi.Router) {
			rm.Post("/", h.CreateRoom)
			rm.Get("/", h.ListRooms)

			rm.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.GetRoom)
				rr.Post("/join", h.JoinRoom)
				rr.Post("/leave", h.LeaveRoom)
				rr.Get("/members", h.GetMembers)
				rr.Get("/chat", h.GetChatHistory)
				rr.Post("/chat", h.SendMessage)
			})
		})

		pr.Route("/posts/{id}", func(pp chi.Router) {
			pp.Post("/comments", h.AddComment)
			pp.Post("/reactions", h.ToggleReaction)
			pp.Post("/save", h.ToggleSave)
		})

		pr.Route("/projects/{id}", func(pj chi.Router) {
			pj.Post("/approve", h.ApproveProject)
			pj.Post("/reject", h.RejectProject)
			pj.Post("/grade", h.GradeProject)
		})

		pr.Route("/notifications", func(nt chi.Router) {
			nt.Get("/", h.ListNotifications)
			nt.Get("/unread-count", h.UnreadCount)
			nt.Post("/read-all", h.MarkAllNotificationsRead)
			nt.Post("/{id}/read", h.MarkNotificationRead)
			nt.Delete("/{id}", h.DeleteNotification)
		})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
