// audit/elasticsearch_repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const indexMapping = `{
  "mappings": {
    "properties": {
      "partition_key":      {"type": "keyword"},
      "row_key":            {"type": "keyword"},
      "action":             {"type": "keyword"},
      "timestamp":          {"type": "date"},
      "employee_id":        {"type": "long"},
      "name":               {"type": "text"},
      "address":            {"type": "text"},
      "extension":          {"type": "keyword"},
      "professional_email": {"type": "keyword"},
      "department":         {"type": "keyword"},
      "salary":             {"type": "double"},
      "employee_json":      {"type": "text", "index": false}
    }
  }
}`

// ElasticsearchRepository stores entries in one index named after the table,
// using the row key as document ID and the partition key for routing.
type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
// A comma-separated list of URLs is accepted for multi-node clusters.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: strings.Split(esURL, ","),
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: strings.ToLower(index)}, nil
}

// EnsureTable creates the index with its mapping if it does not exist yet.
func (r *ElasticsearchRepository) EnsureTable(ctx context.Context) error {
	existsReq := esapi.IndicesExistsRequest{Index: []string{r.index}}
	res, err := existsReq.Do(ctx, r.esClient)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", r.index, err)
	}
	switch res.StatusCode {
	case http.StatusOK:
		res.Body.Close()
		return nil
	case http.StatusNotFound:
		res.Body.Close()
	default:
		defer res.Body.Close()
		return fmt.Errorf("error checking index %s: %s", r.index, res.String())
	}

	createReq := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  strings.NewReader(indexMapping),
	}
	res, err = createReq.Do(ctx, r.esClient)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", r.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body := res.String()
		// another instance may have created it between the two calls
		if res.StatusCode == http.StatusBadRequest && strings.Contains(body, "resource_already_exists_exception") {
			return nil
		}
		return fmt.Errorf("error creating index %s: %s", r.index, body)
	}
	return nil
}

// Upsert indexes the entry under its row key.
func (r *ElasticsearchRepository) Upsert(ctx context.Context, entry EmployeeLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: entry.RowKey,
		Routing:    entry.PartitionKey,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}
