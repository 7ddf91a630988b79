package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftwise/attendance-backend-go/internal/config"
	"github.com/shiftwise/attendance-backend-go/internal/domain/shift"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/shiftwise/attendance-backend-go/internal/handler/http"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/cron"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/email"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwise/attendance-backend-go/internal/service/attendance"
	authService "github.com/shiftwise/attendance-backend-go/internal/service/auth"
	leaveService "github.com/shiftwise/attendance-backend-go/internal/service/leave"
	reportService "github.com/shiftwise/attendance-backend-go/internal/service/report"
	shiftService "github.com/shiftwise/attendance-backend-go/internal/service/shift"
	userService "github.com/shiftwise/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailSvc := email.NewService(cfg.SMTP)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	userSvc := userService.NewUserService(userRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, shiftRepo, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, emailSvc, cfg.SMTP.AdminInbox)
	reportSvc := reportService.NewReportService(reportRepo, loc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		cfg.App.Env,
		authHandler,
		attendanceHandler,
		shiftHandler,
		leaveHandler,
		userHandler,
		reportHandler,
	)

	startReminders(userRepo, shiftRepo, emailSvc, loc)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

// startReminders schedules one check-in reminder per shift. A shift catalog
// that cannot be read at boot only disables reminders, it does not stop the
// server.
func startReminders(userRepo user.UserRepository, shiftRepo shift.ShiftRepository, emailSvc email.Service, loc *time.Location) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shifts, err := shiftRepo.List(ctx)
	if err != nil {
		slog.Error("failed to load shifts, check-in reminders disabled", "error", err)
		return
	}

	scheduler := cron.NewScheduler(loc)
	jobs := cron.NewReminderJobs(userRepo, emailSvc, loc)
	jobs.RegisterJobs(scheduler, shifts)
	scheduler.Start()
}
