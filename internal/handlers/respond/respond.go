// Package respond turns service errors into HTTP replies.
package respond

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/pkg/utils"
)

var statuses = map[domain.Kind]int{
	domain.KindValidation:          http.StatusBadRequest,
	domain.KindAuthentication:      http.StatusUnauthorized,
	domain.KindInsufficientBalance: http.StatusPaymentRequired,
	domain.KindNotFound:            http.StatusNotFound,
	domain.KindTransactionConflict: http.StatusConflict,
	domain.KindConflict:            http.StatusConflict,
	domain.KindDependency:          http.StatusServiceUnavailable,
}

func Status(err error) int {
	if status, ok := statuses[domain.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error writes err with its kind. Internal and dependency failures are logged
// and their details withheld from the client.
func Error(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	status := Status(err)
	message := err.Error()
	switch kind {
	case domain.KindInternal:
		zap.L().Error("request failed", zap.Error(err))
		message = "Internal server error"
	case domain.KindDependency:
		zap.L().Error("dependency unavailable", zap.Error(err))
		message = "Service temporarily unavailable"
	}
	utils.RespondWithKind(w, status, string(kind), message)
}
