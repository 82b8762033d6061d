// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuoteDetails is the display data returned by the getQuoteDetails remote
// operation for a single Quote record.
//
// Field names mirror the org's API names so that the raw payload can be
// logged and compared without translation.
type QuoteDetails struct {
	// ID is the record id of the Quote, when the org echoes it back.
	ID string `json:"Id,omitempty"`

	// Name is the display name of the Quote.
	Name string `json:"Name"`

	// Opportunity is the related Opportunity reached through the
	// Opportunity_Name__c lookup.
	Opportunity OpportunityRef `json:"Opportunity_Name__r"`

	// IsSyncing reports that the Quote has already been synced with its
	// Opportunity.
	IsSyncing bool `json:"IsSyncing__c"`
}

// OpportunityRef is the relationship projection of an Opportunity embedded
// in [QuoteDetails].
type OpportunityRef struct {
	ID   string `json:"Id,omitempty"`
	Name string `json:"Name"`
}

// QuoteRequest is the payload sent to both remote operations.
type QuoteRequest struct {
	QuoteID string `json:"quoteId"`
}
