package location

// RepairStats counts what a repair pass did with records that were not
// emitted as they came in.
type RepairStats struct {
	Input               int
	Output              int
	FragmentsConsumed   int
	FragmentsDiscarded  int
	ContinuationsMerged int
	OrphansDropped      int
}

type repairState int

const (
	stateNoAnchor repairState = iota
	stateAnchorActive
	statePendingFragment
)

type repairAction func(m *repairer, r Record) repairState

// transitions is indexed by current state, then by record kind.
var transitions = map[repairState]map[Kind]repairAction{
	stateNoAnchor: {
		KindFragment:     (*repairer).holdFragment,
		KindNamed:        (*repairer).emitAnchor,
		KindContinuation: (*repairer).dropOrphan,
	},
	stateAnchorActive: {
		KindFragment:     (*repairer).holdFragment,
		KindNamed:        (*repairer).emitAnchor,
		KindContinuation: (*repairer).mergeContinuation,
	},
	statePendingFragment: {
		KindFragment:     (*repairer).holdFragment,
		KindNamed:        (*repairer).emitAnchor,
		KindContinuation: (*repairer).continuationWhilePending,
	},
}

type repairer struct {
	state      repairState
	anchor     Record
	pendingLon interface{}
	pendingLat interface{}
	out        []Record
	stats      RepairStats
}

// Repair runs a single forward pass over records and returns the name-bearing
// records with orphaned coordinate fragments and continuation rows merged
// into them. Merges only fill coordinates the target lacks. Fragments are
// never emitted, and fragments still pending at the end are discarded.
//
// The input records are not modified; every emitted record is a copy.
func Repair(records []Record) ([]Record, RepairStats) {
	m := &repairer{state: stateNoAnchor, out: make([]Record, 0, len(records))}
	m.stats.Input = len(records)

	for _, r := range records {
		m.state = transitions[m.state][Classify(r)](m, r)
	}

	if m.pendingLon != nil {
		m.stats.FragmentsDiscarded++
	}
	if m.pendingLat != nil {
		m.stats.FragmentsDiscarded++
	}
	m.stats.Output = len(m.out)
	return m.out, m.stats
}

func (m *repairer) holdFragment(r Record) repairState {
	field, slot := FieldLatitude, &m.pendingLat
	if _, ok := r[FieldLongitude]; ok {
		field, slot = FieldLongitude, &m.pendingLon
	}
	if r.HasValue(field) {
		if *slot != nil {
			// last fragment of an axis wins
			m.stats.FragmentsDiscarded++
		}
		*slot = r[field]
	}
	if m.pendingLon == nil && m.pendingLat == nil {
		return m.idleState()
	}
	return statePendingFragment
}

func (m *repairer) emitAnchor(r Record) repairState {
	rec := r.Clone()
	if m.pendingLon != nil {
		if !rec.HasValue(FieldLongitude) {
			rec[FieldLongitude] = m.pendingLon
			m.stats.FragmentsConsumed++
		} else {
			m.stats.FragmentsDiscarded++
		}
	}
	if m.pendingLat != nil {
		if !rec.HasValue(FieldLatitude) {
			rec[FieldLatitude] = m.pendingLat
			m.stats.FragmentsConsumed++
		} else {
			m.stats.FragmentsDiscarded++
		}
	}
	m.pendingLon, m.pendingLat = nil, nil

	m.anchor = rec
	m.out = append(m.out, rec)
	return stateAnchorActive
}

func (m *repairer) mergeContinuation(r Record) repairState {
	for _, field := range []string{FieldLongitude, FieldLatitude} {
		if r.HasValue(field) && !m.anchor.HasValue(field) {
			m.anchor[field] = r[field]
		}
	}
	m.stats.ContinuationsMerged++
	return m.state
}

func (m *repairer) dropOrphan(Record) repairState {
	m.stats.OrphansDropped++
	return m.state
}

func (m *repairer) continuationWhilePending(r Record) repairState {
	if m.anchor == nil {
		m.dropOrphan(r)
	} else {
		m.mergeContinuation(r)
	}
	return statePendingFragment
}

func (m *repairer) idleState() repairState {
	if m.anchor != nil {
		return stateAnchorActive
	}
	return stateNoAnchor
}
