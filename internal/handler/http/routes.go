package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version/", h.getServerVersion)
	if h.media != nil {
		router.Handle("/media/*", http.StripPrefix("/media", h.media))
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withBodyLimit, h.withActor)

		// auth
		r.Post("/auth/login/", h.login)
		r.Post("/auth/signup/", h.signup)
		r.Post("/auth/is_admin/", h.isAdmin)

		// catalog
		r.Get("/models/", h.listModels)
		r.Get("/model/get/", h.getModel)
		r.Get("/models/search/", h.searchModels)
		r.Group(func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Post("/models/add/", h.addModel)
			r.Post("/models/update/", h.updateModel)
			r.Post("/models/delete/", h.deleteModel)
			r.Post("/models/unlist/", h.unlistModel)
		})

		// rooms
		r.Get("/rooms/", h.listRooms)
		r.Get("/room/get/", h.getRoom)
		r.Post("/rooms/add/", h.addRoom)
		r.Post("/rooms/update/", h.updateRoom)
		r.Post("/rooms/delete/", h.deleteRoom)

		// placements
		r.Post("/rooms/add_model/", h.addModelToRoom)
		r.Get("/room_model/get/", h.getRoomModel)
		r.Post("/room_models/update/", h.updateRoomModel)
		r.Post("/room_models/delete/", h.deleteRoomModel)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
