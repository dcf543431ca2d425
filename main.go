package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"chordbook/config"
	"chordbook/controllers"
	"chordbook/routes"
	"chordbook/sources/psql"
	"chordbook/sources/psql/dao"
	"chordbook/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := psql.Seed(ctx, db.DB, cfg.ChordSeedPath); err != nil {
		logging.ErrorLogger.Error("seed error", zap.Error(err))
		os.Exit(1)
	}

	noteDAO := dao.NewNoteDAO(db.DB)
	chordDAO := dao.NewChordDAO(db.DB)
	musicDAO := dao.NewMusicDAO(db.DB)
	commentDAO := dao.NewCommentDAO(db.DB)
	userDAO := dao.NewUserDAO(db.DB)
	roleDAO := dao.NewRoleDAO(db.DB)

	noteCtrl := controllers.NewNoteController(noteDAO)
	chordCtrl := controllers.NewChordController(chordDAO, noteDAO)
	musicCtrl := controllers.NewMusicController(musicDAO, chordDAO)
	commentCtrl := controllers.NewCommentController(commentDAO, musicDAO)
	userCtrl := controllers.NewUserController(userDAO, roleDAO)
	authCtrl := controllers.NewAuthController(userDAO, cfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(routes.RequestLogging)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/notes", routes.NoteRoutes(noteCtrl))
	r.Mount("/chords", routes.ChordRoutes(chordCtrl))
	r.Mount("/musics", routes.MusicRoutes(musicCtrl, commentCtrl, cfg))
	r.Mount("/users", routes.UserRoutes(userCtrl, cfg))
	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/oauth2", routes.TokenRoutes(authCtrl))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
