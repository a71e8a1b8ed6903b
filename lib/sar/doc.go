// Package sar implements segmentation and reassembly of encoded USP messages
// carried in SessionContextRecords.
//
// Segment splits an encoded Msg into consecutive records. A Reassembler collects
// incoming records per session_id, ordered by sequence_id, and returns the complete
// payload once the COMPLETE segment arrives. Pending segments live in a Store,
// either in memory or in Redis.
package sar
