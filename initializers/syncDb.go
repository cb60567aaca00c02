package initializers

import (
	"log"

	"github.com/kamaucodes/sokomart-api/storage"
)

func SyncDatabase() {
	DB.AutoMigrate(&storage.StateRecord{})
	log.Println("Database synced successfully.")
}
