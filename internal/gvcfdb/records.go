package gvcfdb

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

// recordEnd returns the last reference position a record covers: the
// END value for blocks, otherwise the span of the REF allele.
func recordEnd(r *vcf.Record) int64 {
	if end, ok := r.InfoEnd(); ok {
		return end
	}
	return r.Pos + int64(len(r.Ref)) - 1
}

// WriteRecords batch-inserts records for a sample using the Appender API.
func (s *Store) WriteRecords(sample string, records []*vcf.Record) error {
	if len(records) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "gvcf_records")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range records {
		if err := appender.AppendRow(
			sample, r.Chrom, r.Pos, recordEnd(r),
			r.ID, r.Ref, r.Alt, r.Qual, r.Filter, r.Info, r.Format, r.Sample,
		); err != nil {
			return fmt.Errorf("append record: %w", err)
		}
	}

	return appender.Flush()
}

// QueryRegion returns a sample's records overlapping the closed
// interval [start, end] on chrom, in position order. Block records
// overlap through their END coordinate, so a query inside a block
// still finds it.
func (s *Store) QueryRegion(sample, chrom string, start, end int64) ([]*vcf.Record, error) {
	rows, err := s.db.Query(`SELECT
		chrom, pos, id, ref, alt, qual, filter, info, format, call
		FROM gvcf_records
		WHERE sample=? AND chrom=? AND pos<=? AND end_pos>=?
		ORDER BY pos`,
		sample, chrom, end, start)
	if err != nil {
		return nil, fmt.Errorf("query region: %w", err)
	}
	defer rows.Close()

	var records []*vcf.Record
	for rows.Next() {
		var r vcf.Record
		if err := rows.Scan(
			&r.Chrom, &r.Pos, &r.ID, &r.Ref, &r.Alt,
			&r.Qual, &r.Filter, &r.Info, &r.Format, &r.Sample,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Samples returns the distinct sample identifiers present in the store.
func (s *Store) Samples() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT sample FROM gvcf_records ORDER BY sample")
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []string
	for rows.Next() {
		var sample string
		if err := rows.Scan(&sample); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

// CountRecords returns the number of stored records for a sample.
func (s *Store) CountRecords(sample string) (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM gvcf_records WHERE sample=?", sample).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// ClearSample removes all records and load history for a sample.
func (s *Store) ClearSample(sample string) error {
	if _, err := s.db.Exec("DELETE FROM gvcf_records WHERE sample=?", sample); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM load_history WHERE sample=?", sample)
	return err
}
