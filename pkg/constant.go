package pkg

// enum of partition tag
type PartitionTag uint8

const (
	PARTITION_A PartitionTag = iota
	PARTITION_B
	SOURCE
	SINK
)

func (p PartitionTag) String() string {
	switch p {
	case PARTITION_A:
		return "A"
	case PARTITION_B:
		return "B"
	case SOURCE:
		return "source"
	case SINK:
		return "sink"
	default:
		return "unknown"
	}
}

const (
	SOURCE_NAME = "source"
	SINK_NAME   = "sink"

	SOURCE_ID = 0
	SINK_ID   = 1

	INFINITY_DISTANCE = int(^uint(0)>>1) / 3
)

const (
	DEBUG = false
)
