package monitor

import "time"

type Status struct {
	PostgreSQL bool      `json:"postgresql"`
	Redis      bool      `json:"redis"`
	KVStore    bool      `json:"kvstore"`
	KVKeys     int       `json:"kv_keys"`
	LastCheck  time.Time `json:"last_check"`
}
