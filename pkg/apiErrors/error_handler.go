package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API do dashboard
const (
	// Erros de campanha (1000-1999)
	ErrCampaignNotFound = "CMP_001" // Campanha não encontrada
	ErrCampaignFetch    = "CMP_002" // Falha ao buscar campanhas
	ErrKPICalculation   = "CMP_003" // Falha ao calcular KPIs
	ErrNoteCreation     = "CMP_004" // Falha ao adicionar nota
	ErrHierarchyFetch   = "CMP_005" // Falha ao buscar hierarquias

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de sincronização (3000-3999)
	ErrSyncDispatch = "SYN_001" // Falha ao iniciar sincronização
	ErrSyncHistory  = "SYN_002" // Falha ao buscar histórico de sincronização

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrCampaignNotFound:    http.StatusNotFound,
	ErrCampaignFetch:       http.StatusInternalServerError,
	ErrKPICalculation:      http.StatusInternalServerError,
	ErrNoteCreation:        http.StatusInternalServerError,
	ErrHierarchyFetch:      http.StatusInternalServerError,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrSyncDispatch:        http.StatusInternalServerError,
	ErrSyncHistory:         http.StatusInternalServerError,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Detail  string `json:"detail"`            // Mensagem exibida pelo dashboard
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Detail
}

// StatusFor retorna o status HTTP associado a um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, detail string, details any) {
	apiErr := APIError{
		Code:    code,
		Detail:  detail,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:   ErrInternalServer,
			Detail: "Unknown error",
		}
	}

	return APIError{
		Code:   code,
		Detail: err.Error(),
	}
}
