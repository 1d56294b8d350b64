package barber

import (
	"github.com/primebarbervip/PrimeBarberClub/pkg/dbmetrics"
)

// Database executor interfaces shared with pkg/dbmetrics
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
