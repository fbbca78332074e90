package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/sabaccdroid/sabacc-backend/internal/game"
	"github.com/sabaccdroid/sabacc-backend/internal/hub"
	"github.com/sabaccdroid/sabacc-backend/internal/table"
)

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

// CreateTable opens a new game table. Optional query params "rounds" and
// "cards" override the session defaults.
func CreateTable(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := game.Config{
			Rounds:        queryInt(r, "rounds"),
			StartingCards: queryInt(r, "cards"),
		}

		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *table.Table, 1)
			h.Inbox() <- hub.GetTable{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			log.Warn("collision on code, regenerating", zap.String("code", c))
		}

		reply := make(chan *table.Table, 1)
		h.Inbox() <- hub.CreateTable{Code: code, Cfg: cfg, Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create table", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

// queryInt parses an optional positive int query param; 0 means "use the
// default".
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
