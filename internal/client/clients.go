package client

import (
	"net/http"
	"time"
)

type Clients struct {
	*MyMemoryAPI
	*DictionaryAPI
}

func InitClients(timeout time.Duration, email string) Clients {
	httpClient := &http.Client{Timeout: timeout}
	return Clients{
		MyMemoryAPI:   NewMyMemoryAPI(httpClient, myMemoryURL, email),
		DictionaryAPI: NewDictionaryAPI(httpClient, dictionaryURL),
	}
}
