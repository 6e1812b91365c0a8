package results

import (
	"context"
	"fmt"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/app/services/core/history"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/responses"
	"medcalc-service/internal/pkg/paging"
	"medcalc-service/internal/pkg/utils"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type resultUsecase struct {
	Histories     *history.Registry
	Reports       contracts.ReportStorage
	Events        contracts.EventPublisher
	PresignExpiry time.Duration
	Log           *zap.Logger
	now           func() time.Time
}

func NewResultUsecase(
	histories *history.Registry,
	reports contracts.ReportStorage,
	events contracts.EventPublisher,
	presignExpiry time.Duration,
	logger *zap.Logger,
) ResultUsecase {
	return &resultUsecase{
		Histories:     histories,
		Reports:       reports,
		Events:        events,
		PresignExpiry: presignExpiry,
		Log:           logger,
		now:           time.Now,
	}
}

func (uc *resultUsecase) FetchHistory(ctx context.Context, sessionID string, page, pageSize int) (*paging.Page[responses.HistoryItem], error) {
	summaries, err := uc.Histories.Get(sessionID).FetchHistory(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	items := make([]responses.HistoryItem, 0, len(summaries.Items))
	for _, summary := range summaries.Items {
		items = append(items, responses.HistoryItem{
			ResultSummary: summary,
			SeverityLabel: summary.Severity.Label(),
			CreatedAtText: utils.FormatDateTime(summary.CreatedAt),
			TimeAgo:       utils.FormatTimeAgo(summary.CreatedAt, now),
		})
	}

	return &paging.Page[responses.HistoryItem]{
		Items:    items,
		Page:     summaries.Page,
		PageSize: summaries.PageSize,
		Total:    summaries.Total,
		HasMore:  summaries.HasMore,
	}, nil
}

func (uc *resultUsecase) FetchResultDetail(ctx context.Context, sessionID, resultID string) (*responses.ResultDetail, error) {
	result, err := uc.Histories.Get(sessionID).FetchResultDetail(ctx, resultID)
	if err != nil {
		return nil, err
	}

	return &responses.ResultDetail{
		Result:        result,
		SeverityLabel: result.Severity.Label(),
		ScoreText:     utils.FormatScore(result.TotalScore, constvars.PHQ9MaxScore),
		CreatedAtText: utils.FormatDateTime(result.CreatedAt),
		Answers:       answerDetails(result.Answers),
	}, nil
}

// answerDetails lists answers by question id, numerically where ids are
// numbers.
func answerDetails(answers map[string]int) []responses.AnswerDetail {
	details := make([]responses.AnswerDetail, 0, len(answers))
	for questionID, value := range answers {
		details = append(details, responses.AnswerDetail{
			QuestionID: questionID,
			Value:      value,
			Label:      utils.AnswerLabel(value),
		})
	}
	sort.Slice(details, func(i, j int) bool {
		left, leftErr := cast.ToIntE(details[i].QuestionID)
		right, rightErr := cast.ToIntE(details[j].QuestionID)
		if leftErr == nil && rightErr == nil {
			return left < right
		}
		return details[i].QuestionID < details[j].QuestionID
	})
	return details
}

func (uc *resultUsecase) RequestInterpretation(ctx context.Context, sessionID, resultID string) error {
	if err := uc.Histories.Get(sessionID).RequestInterpretation(ctx, resultID); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"result_id":    resultID,
		"requested_at": uc.now().UTC(),
	}
	if sessionData := utils.GetSessionData(ctx); sessionData != nil {
		payload["user_id"] = sessionData.UserID
	}
	uc.Events.Publish(ctx, constvars.EventInterpretationRequested, payload)
	return nil
}

// ShareResult renders the result as plain text, stores it in the report
// bucket and hands back a link that expires.
func (uc *resultUsecase) ShareResult(ctx context.Context, sessionID, resultID string) (*responses.ShareReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("resultUsecase.ShareResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	result, err := uc.Histories.Get(sessionID).FetchResultDetail(ctx, resultID)
	if err != nil {
		return nil, err
	}

	userID := sessionID
	if sessionData := utils.GetSessionData(ctx); sessionData != nil && sessionData.UserID != "" {
		userID = sessionData.UserID
	}

	text := RenderReport(result)
	objectName := utils.GenerateReportObjectName(userID, result.ID)
	if err := uc.Reports.PutReport(ctx, objectName, text); err != nil {
		return nil, err
	}

	url, err := uc.Reports.GetObjectUrlWithExpiryTime(ctx, objectName, uc.PresignExpiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("resultUsecase.ShareResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return &responses.ShareReport{
		URL:       url,
		ObjectKey: objectName,
		Text:      text,
	}, nil
}

// RenderReport builds the text a user shares from the result screen.
func RenderReport(result *models.Result) string {
	testName := constvars.ReportUnknownTest
	if result.Questionnaire != nil && result.Questionnaire.Name != "" {
		testName = result.Questionnaire.Name
	}
	severity := constvars.ReportUnknownSeverity
	if result.Severity != "" {
		severity = result.Severity.Label()
	}

	lines := []string{
		fmt.Sprintf(constvars.ReportTitleFormat, testName),
		fmt.Sprintf(constvars.ReportScoreFormat, result.TotalScore),
		fmt.Sprintf(constvars.ReportSeverityFormat, severity),
		fmt.Sprintf(constvars.ReportDateFormat, utils.FormatDate(result.CreatedAt, constvars.DefaultDatePattern)),
	}
	if result.IsInterpreted && result.InterpretationComment != "" {
		lines = append(lines, fmt.Sprintf(constvars.ReportInterpretationFmt, result.InterpretationComment))
	}
	return strings.Join(lines, "\n")
}
