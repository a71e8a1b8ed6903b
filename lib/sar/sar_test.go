package sar

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-usp/go-usp/lib/config"
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/go-usp/go-usp/lib/record"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(sessionID, seq uint64, state record.SARState, payload string) *record.SessionContextRecord {
	return &record.SessionContextRecord{
		SessionID:          sessionID,
		SequenceID:         seq,
		PayloadSARState:    state,
		PayloadrecSARState: state,
		Payload:            [][]byte{[]byte(payload)},
	}
}

func testConfig() config.SARConfig {
	return config.DefaultCodecConfig().SAR
}

func sampleMsg() *msg.Msg {
	return &msg.Msg{
		Header: &msg.Header{MsgID: "sar-1", MsgType: msg.MsgTypeGet},
		Body: &msg.Body{MsgBody: &msg.Request{ReqType: &msg.Get{
			ParamPaths: []string{
				"Device.DeviceInfo.",
				"Device.LocalAgent.Controller.*.",
				"Device.LocalAgent.Subscription.",
				"Device.IP.Interface.*.IPv4Address.*.IPAddress",
			},
			MaxDepth: 2,
		}}},
	}
}

func TestSegment(t *testing.T) {
	t.Run("Unfragmented", func(t *testing.T) {
		recs, err := Segment([]byte("0123456789"), SegmentOptions{SessionID: 3, FirstSequenceID: 7, ExpectedID: 2, MaxFragmentSize: 16})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, record.NewUnfragmented(3, 7, 2, []byte("0123456789")), recs[0])
	})

	t.Run("Fragmented", func(t *testing.T) {
		payload := bytes.Repeat([]byte("x"), 40)
		recs, err := Segment(payload, SegmentOptions{SessionID: 1, FirstSequenceID: 10, MaxFragmentSize: 16})
		require.NoError(t, err)
		require.Len(t, recs, 3)

		states := []record.SARState{record.SARBegin, record.SARInProcess, record.SARComplete}
		sizes := []int{16, 16, 8}
		for i, r := range recs {
			assert.Equal(t, uint64(10+i), r.SequenceID)
			assert.Equal(t, states[i], r.PayloadSARState)
			assert.Equal(t, states[i], r.PayloadrecSARState)
			require.Len(t, r.Payload, 1)
			assert.Len(t, r.Payload[0], sizes[i])
		}
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		recs, err := Segment(make([]byte, 32), SegmentOptions{MaxFragmentSize: 16})
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, record.SARBegin, recs[0].PayloadSARState)
		assert.Equal(t, record.SARComplete, recs[1].PayloadSARState)
	})

	t.Run("InvalidSize", func(t *testing.T) {
		_, err := Segment([]byte("x"), SegmentOptions{})
		assert.ErrorIs(t, err, ErrInvalidFragmentSize)
	})
}

func TestFragmentOrdering(t *testing.T) {
	ctx := context.Background()
	encoded, err := sampleMsg().MarshalBinary()
	require.NoError(t, err)

	for _, size := range []int{1, 7, 16, len(encoded) - 1, len(encoded), len(encoded) + 1} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			recs, err := Segment(encoded, SegmentOptions{SessionID: 42, FirstSequenceID: 1, MaxFragmentSize: size})
			require.NoError(t, err)

			r := NewReassembler(NewMemoryStore(), testConfig())
			var got *msg.Msg
			for i, rec := range recs {
				// Each segment travels inside its own Record.
				wrapped := &record.Record{Version: "1.3", ToID: "a", FromID: "b", RecordType: rec}
				data, err := wrapped.MarshalBinary()
				require.NoError(t, err)
				decoded, err := record.Decode(data)
				require.NoError(t, err)

				got, err = r.PushMsg(ctx, decoded.GetSessionContext())
				require.NoError(t, err)
				if i < len(recs)-1 {
					assert.Nil(t, got)
				}
			}
			require.NotNil(t, got)
			assert.Equal(t, "sar-1", got.MsgID())
			again, err := got.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, encoded, again)

			pending, err := r.Pending(ctx)
			require.NoError(t, err)
			assert.Zero(t, pending)
		})
	}
}

func TestOutOfOrderSegmentsDoNotReassemble(t *testing.T) {
	ctx := context.Background()
	recs, err := Segment([]byte("abcdefghij"), SegmentOptions{SessionID: 1, MaxFragmentSize: 3})
	require.NoError(t, err)
	require.Len(t, recs, 4)

	r := NewReassembler(NewMemoryStore(), testConfig())
	_, done, err := r.Push(ctx, recs[0])
	require.NoError(t, err)
	assert.False(t, done)
	_, _, err = r.Push(ctx, recs[2])
	assert.ErrorIs(t, err, ErrSequenceGap)
	_, _, err = r.Push(ctx, recs[3])
	assert.ErrorIs(t, err, ErrSequenceGap)

	next, ok, err := r.Expected(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), next)

	for _, rec := range recs[1:] {
		var payload []byte
		payload, done, err = r.Push(ctx, rec)
		require.NoError(t, err)
		if done {
			assert.Equal(t, []byte("abcdefghij"), payload)
		}
	}
	assert.True(t, done)
}

func TestReassemblerNone(t *testing.T) {
	ctx := context.Background()
	r := NewReassembler(NewMemoryStore(), testConfig())

	payload, done, err := r.Push(ctx, record.NewUnfragmented(1, 0, 0, []byte("whole")))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []byte("whole"), payload)

	_, _, err = r.Push(ctx, seg(1, 5, record.SARBegin, "part"))
	require.NoError(t, err)
	payload, done, err = r.Push(ctx, seg(1, 6, record.SARNone, "other"))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []byte("other"), payload)

	_, ok, err := r.Expected(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReassemblerMultiplePayloadElements(t *testing.T) {
	ctx := context.Background()
	r := NewReassembler(NewMemoryStore(), testConfig())

	begin := seg(1, 0, record.SARBegin, "ab")
	begin.Payload = append(begin.Payload, []byte("cd"))
	_, _, err := r.Push(ctx, begin)
	require.NoError(t, err)

	payload, done, err := r.Push(ctx, seg(1, 1, record.SARComplete, "ef"))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []byte("abcdef"), payload)
}

func TestReassemblerErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("NoBegin", func(t *testing.T) {
		r := NewReassembler(NewMemoryStore(), testConfig())
		_, _, err := r.Push(ctx, seg(1, 1, record.SARInProcess, "x"))
		assert.ErrorIs(t, err, ErrNoBegin)
		_, _, err = r.Push(ctx, seg(1, 1, record.SARComplete, "x"))
		assert.ErrorIs(t, err, ErrNoBegin)
	})

	t.Run("Duplicate", func(t *testing.T) {
		r := NewReassembler(NewMemoryStore(), testConfig())
		_, _, err := r.Push(ctx, seg(1, 5, record.SARBegin, "a"))
		require.NoError(t, err)
		_, _, err = r.Push(ctx, seg(1, 6, record.SARInProcess, "b"))
		require.NoError(t, err)
		_, _, err = r.Push(ctx, seg(1, 6, record.SARInProcess, "b"))
		assert.ErrorIs(t, err, ErrDuplicate)

		payload, done, err := r.Push(ctx, seg(1, 7, record.SARComplete, "c"))
		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, []byte("abc"), payload)
	})

	t.Run("BeginRestarts", func(t *testing.T) {
		r := NewReassembler(NewMemoryStore(), testConfig())
		_, _, err := r.Push(ctx, seg(1, 0, record.SARBegin, "old"))
		require.NoError(t, err)
		_, _, err = r.Push(ctx, seg(1, 10, record.SARBegin, "new"))
		require.NoError(t, err)
		payload, done, err := r.Push(ctx, seg(1, 11, record.SARComplete, "!"))
		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, []byte("new!"), payload)
	})

	t.Run("UnexpectedState", func(t *testing.T) {
		r := NewReassembler(NewMemoryStore(), testConfig())
		_, _, err := r.Push(ctx, seg(1, 0, record.SARState(9), "x"))
		assert.ErrorIs(t, err, ErrUnexpectedState)
		_, _, err = r.Push(ctx, nil)
		assert.ErrorIs(t, err, ErrUnexpectedState)
	})

	t.Run("TooLarge", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxBufferedBytes = 10
		r := NewReassembler(NewMemoryStore(), cfg)
		_, _, err := r.Push(ctx, seg(1, 0, record.SARBegin, "123456"))
		require.NoError(t, err)
		_, _, err = r.Push(ctx, seg(1, 1, record.SARInProcess, "123456"))
		assert.ErrorIs(t, err, ErrTooLarge)

		pending, err := r.Pending(ctx)
		require.NoError(t, err)
		assert.Zero(t, pending)
	})

	t.Run("TooManySessions", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxSessions = 1
		r := NewReassembler(NewMemoryStore(), cfg)
		_, _, err := r.Push(ctx, seg(1, 0, record.SARBegin, "a"))
		require.NoError(t, err)
		_, _, err = r.Push(ctx, seg(2, 0, record.SARBegin, "a"))
		assert.ErrorIs(t, err, ErrTooManySessions)
		_, _, err = r.Push(ctx, seg(1, 0, record.SARBegin, "b"))
		assert.NoError(t, err)

		require.NoError(t, r.Discard(ctx, 1))
		_, _, err = r.Push(ctx, seg(2, 0, record.SARBegin, "a"))
		assert.NoError(t, err)
	})

	t.Run("BadPayload", func(t *testing.T) {
		r := NewReassembler(NewMemoryStore(), testConfig())
		m, err := r.PushMsg(ctx, record.NewUnfragmented(1, 0, 0, []byte{0x0a, 0x05}))
		assert.Error(t, err)
		assert.Nil(t, m)
	})
}

func TestReassemblerExpire(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.FragmentTTL = time.Minute

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewReassembler(NewMemoryStore(), cfg)
	r.now = func() time.Time { return now }

	_, _, err := r.Push(ctx, seg(1, 0, record.SARBegin, "a"))
	require.NoError(t, err)
	now = now.Add(30 * time.Second)
	_, _, err = r.Push(ctx, seg(2, 0, record.SARBegin, "a"))
	require.NoError(t, err)

	now = now.Add(45 * time.Second)
	n, err := r.Expire(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, err := r.Expected(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	next, ok, err := r.Expected(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), next)

	// A stale buffer is dropped on access even without Expire.
	now = now.Add(time.Hour)
	_, _, err = r.Push(ctx, seg(2, 1, record.SARComplete, "b"))
	assert.ErrorIs(t, err, ErrNoBegin)
}

func TestReassemblerConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	r := NewReassembler(NewMemoryStore(), testConfig())

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			payload := bytes.Repeat([]byte{byte(id)}, 100)
			recs, err := Segment(payload, SegmentOptions{SessionID: uint64(id), MaxFragmentSize: 9})
			if err != nil {
				return
			}
			for _, rec := range recs {
				out, done, err := r.Push(ctx, rec)
				if err != nil {
					return
				}
				if done {
					results[id] = out
				}
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, bytes.Repeat([]byte{byte(i)}, 100), got, "session %d", i)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	buf := &Buffer{SessionID: 1, NextSequenceID: 2, Fragments: [][]byte{[]byte("a")}}
	require.NoError(t, s.Put(ctx, buf))

	buf.Fragments = append(buf.Fragments, []byte("b"))
	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got.Fragments, 1)

	missing, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.Close())
	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBufferEncoding(t *testing.T) {
	buf := &Buffer{SessionID: 9, NextSequenceID: 4, Fragments: [][]byte{[]byte("ab"), []byte("c")}}
	got, err := decodeBuffer(encodeBuffer(buf))
	require.NoError(t, err)
	assert.Equal(t, buf, got)
	assert.Equal(t, 3, got.Len())

	_, err = decodeBuffer([]byte{0x08})
	assert.Error(t, err)
}

func TestNewStoreFromConfig(t *testing.T) {
	cfg := testConfig()
	s, err := NewStoreFromConfig(cfg)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	cfg.Store = config.StoreRedis
	s, err = NewStoreFromConfig(cfg)
	require.NoError(t, err)
	rs, ok := s.(*RedisStore)
	require.True(t, ok)
	assert.Equal(t, "usp:sar:12", rs.key(12))
	assert.NoError(t, s.Close())

	cfg.Store = "etcd"
	_, err = NewStoreFromConfig(cfg)
	assert.ErrorIs(t, err, ErrUnknownStore)

	_, err = NewReassemblerFromConfig(cfg)
	assert.ErrorIs(t, err, ErrUnknownStore)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("USP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("USP_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	prefix := fmt.Sprintf("usp:sar:test:%d:", time.Now().UnixNano())
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: addr}), prefix, time.Minute)
	require.NoError(t, store.Ping(ctx))
	defer store.Close()

	buf := &Buffer{SessionID: 5, NextSequenceID: 3, Fragments: [][]byte{[]byte("ab")}}
	require.NoError(t, store.Put(ctx, buf))
	got, err := store.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, buf, got)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, store.Delete(ctx, 5))
	got, err = store.Get(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, got)

	r := NewReassembler(store, testConfig())
	encoded, err := sampleMsg().MarshalBinary()
	require.NoError(t, err)
	recs, err := Segment(encoded, SegmentOptions{SessionID: 77, MaxFragmentSize: 10})
	require.NoError(t, err)
	var m *msg.Msg
	for _, rec := range recs {
		m, err = r.PushMsg(ctx, rec)
		require.NoError(t, err)
	}
	require.NotNil(t, m)
	assert.Equal(t, "sar-1", m.MsgID())
}
