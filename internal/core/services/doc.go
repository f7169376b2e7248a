// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters): the retrieval store owns the
// index lifecycle and its degradation contract, and the pipeline
// service runs discovery, crawling, ingestion, and generation.
package services
