// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/quote-sync/models"
	"github.com/tidwall/gjson"
)

// Field paths of the getQuoteDetails payload.
const (
	pathQuoteID         = "Id"
	pathQuoteName       = "Name"
	pathOpportunityID   = "Opportunity_Name__r.Id"
	pathOpportunityName = "Opportunity_Name__r.Name"
	pathIsSyncing       = "IsSyncing__c"
)

func decodeQuoteDetails(raw []byte) (models.QuoteDetails, error) {
	if !gjson.ValidBytes(raw) {
		return models.QuoteDetails{}, fmt.Errorf("%w: quote details are not valid json", ErrUnexpectedResponse)
	}

	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return models.QuoteDetails{}, fmt.Errorf("%w: quote details must be an object", ErrUnexpectedResponse)
	}

	name := res.Get(pathQuoteName)
	if !name.Exists() {
		return models.QuoteDetails{}, fmt.Errorf("%w: %s is missing", ErrUnexpectedResponse, pathQuoteName)
	}
	oppName := res.Get(pathOpportunityName)
	if !oppName.Exists() {
		return models.QuoteDetails{}, fmt.Errorf("%w: %s is missing", ErrUnexpectedResponse, pathOpportunityName)
	}

	return models.QuoteDetails{
		ID:   res.Get(pathQuoteID).String(),
		Name: name.String(),
		Opportunity: models.OpportunityRef{
			ID:   res.Get(pathOpportunityID).String(),
			Name: oppName.String(),
		},
		IsSyncing: res.Get(pathIsSyncing).Bool(),
	}, nil
}

// decodeSyncResult returns the outcome message of syncQuoteWithOpportunity.
// Apex serialises a String result as a JSON string; any other body is
// returned as trimmed text.
func decodeSyncResult(raw []byte) string {
	if gjson.ValidBytes(raw) {
		res := gjson.ParseBytes(raw)
		if res.Type == gjson.String || res.Type == gjson.Null {
			return res.String()
		}
	}

	return strings.TrimSpace(string(raw))
}
