package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/pkg/apperror"
	"go-jobboard-portal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const (
	MsgApplicationSent   = "Aplikasi berhasil dikirim"
	MsgApplicationFailed = "Gagal mengirim aplikasi"
	MsgApplicationError  = "Terjadi kesalahan saat mengirim aplikasi"
	MsgApplicantsFailed  = "Gagal memuat data kandidat"
)

// createdAtLayout matches JavaScript's Date.toISOString.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

var rosterHeaders = []string{"NAME", "EMAIL", "PHONE", "GENDER", "DOMICILE", "DATE OF BIRTH", "LINKEDIN", "APPLIED AT"}

type applicationUsecase struct {
	appRepo  domain.ApplicationRepository
	validate *validator.Validate
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo, validate: validate}
}

func (u *applicationUsecase) Submit(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	if err := u.validate.Struct(app); err != nil {
		return nil, apperror.New(http.StatusBadRequest, MsgFieldsRequired, err)
	}

	app.ID = 0
	app.CreatedAt = time.Now().UTC().Format(createdAtLayout)

	created, err := u.appRepo.Create(ctx, app)
	if err != nil {
		logger.Log.Error("Failed to submit application", "job_id", app.JobID, "error", err)
		if apperror.IsNetwork(err) && !apperror.IsTransport(err) {
			return nil, apperror.BadGateway(MsgApplicationFailed, err)
		}
		return nil, apperror.BadGateway(MsgApplicationError, err)
	}
	return created, nil
}

func (u *applicationUsecase) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	apps, err := u.appRepo.List(ctx, domain.Query{"jobId": fmt.Sprint(jobID)})
	if err != nil {
		logger.Log.Error("Failed to load applications", "job_id", jobID, "error", err)
		return nil, apperror.BadGateway(MsgApplicantsFailed, err)
	}

	// Stores that ignore query filters return everything.
	out := make([]domain.JobApplication, 0, len(apps))
	for _, app := range apps {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (u *applicationUsecase) Export(ctx context.Context, job *domain.Job, format domain.ExportFormat) (*domain.ExportFile, error) {
	apps, err := u.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102_150405")
	switch format {
	case domain.ExportCSV:
		data, err := exportCSV(apps)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("applicants_job_%d_%s.csv", job.ID, stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case domain.ExportXLSX, "":
		data, err := exportExcel(job, apps)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("applicants_job_%d_%s.xlsx", job.ID, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, apperror.BadRequest("Unsupported export format: " + string(format))
	}
}

func rosterRow(app domain.JobApplication) []string {
	return []string{app.Name, app.Email, app.Phone, app.Gender, app.Domicile, app.BirthDisplay(), app.Linkedin, app.CreatedAt}
}

func exportExcel(job *domain.Job, apps []domain.JobApplication) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applicants"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range rosterHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#01959F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(rosterHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, value := range rosterRow(app) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range rosterHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}
	f.SetDocProps(&excelize.DocProperties{Title: job.Title + " applicants"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(apps []domain.JobApplication) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(rosterHeaders); err != nil {
		return nil, err
	}
	for _, app := range apps {
		if err := w.Write(rosterRow(app)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
