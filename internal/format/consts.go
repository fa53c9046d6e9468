// Package format houses low-level decoders for the tagged block layout used by
// HE-era resource archives. Every structure on disk is a block:
//
//	Offset  Size  Field
//	0x00    4     Tag, four opaque bytes (usually ASCII such as "LFLF")
//	0x04    4     Big-endian length of the whole block, header included
//	0x08    ...   Payload (further blocks for containers, raw bytes otherwise)
//
// Disk and index files are stored XOR-encoded with a single constant byte; see
// the cipher package for the transparent decoding layer.
package format

// XORKey is the byte every disk and index file is XOR-encoded with.
const XORKey byte = 0x69

const (
	// TagSize is the size of a block tag in bytes.
	TagSize = 4

	// LengthSize is the size of the big-endian length field following the tag.
	LengthSize = 4

	// HeaderSize is the size of a block header (tag + length). Declared block
	// lengths include these bytes.
	HeaderSize = TagSize + LengthSize

	// LocalNumberSize is the size of the little-endian number prefixing the
	// payload of a local script block.
	LocalNumberSize = 4
)

// Container tags found in disk files.
var (
	// LECF is the mandatory root container of a disk file.
	LECF = BlockID{'L', 'E', 'C', 'F'}

	// LFLF groups every block belonging to one room.
	LFLF = BlockID{'L', 'F', 'L', 'F'}

	// RMDA holds room data (objects, boxes, local scripts) and is itself a
	// container of raw blocks.
	RMDA = BlockID{'R', 'M', 'D', 'A'}
)

// Leaf tags with special meaning.
var (
	// LSC2 is a local script whose payload begins with its own script number.
	LSC2 = BlockID{'L', 'S', 'C', '2'}

	RMIM = BlockID{'R', 'M', 'I', 'M'}
	SCRP = BlockID{'S', 'C', 'R', 'P'}
	SOUN = BlockID{'S', 'O', 'U', 'N'}
	DIGI = BlockID{'D', 'I', 'G', 'I'}
	TALK = BlockID{'T', 'A', 'L', 'K'}
	WSOU = BlockID{'W', 'S', 'O', 'U'}
	AKOS = BlockID{'A', 'K', 'O', 'S'}
	COST = BlockID{'C', 'O', 'S', 'T'}
	CHAR = BlockID{'C', 'H', 'A', 'R'}
	AWIZ = BlockID{'A', 'W', 'I', 'Z'}
	MULT = BlockID{'M', 'U', 'L', 'T'}
	TLKE = BlockID{'T', 'L', 'K', 'E'}
)

// Index file tags.
var (
	// RNAM maps room numbers to NUL-terminated names.
	RNAM = BlockID{'R', 'N', 'A', 'M'}

	// DLFL lists the payload offset of every room's LFLF container.
	DLFL = BlockID{'D', 'L', 'F', 'L'}

	// DISK lists the disk number every room lives on.
	DISK = BlockID{'D', 'I', 'S', 'K'}

	// Directory blocks. Each one maps object numbers to (room, offset) pairs
	// for one family of resources.
	DIRI = BlockID{'D', 'I', 'R', 'I'} // room images
	DIRR = BlockID{'D', 'I', 'R', 'R'} // room data
	DIRS = BlockID{'D', 'I', 'R', 'S'} // global scripts
	DIRN = BlockID{'D', 'I', 'R', 'N'} // sounds
	DIRC = BlockID{'D', 'I', 'R', 'C'} // costumes
	DIRF = BlockID{'D', 'I', 'R', 'F'} // charsets
	DIRM = BlockID{'D', 'I', 'R', 'M'} // images
	DIRT = BlockID{'D', 'I', 'R', 'T'} // talkies
)
