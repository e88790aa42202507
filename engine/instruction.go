package engine

// Instruction is a decoded BF++ program character.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	OP_NOP    = Instruction(0)  // nop
	OP_LEFT   = Instruction(1)  // <
	OP_RIGHT  = Instruction(2)  // >
	OP_INC    = Instruction(3)  // +
	OP_DEC    = Instruction(4)  // -
	OP_OUTPUT = Instruction(5)  // .
	OP_INPUT  = Instruction(6)  // ,
	OP_LOOP   = Instruction(7)  // [
	OP_REPEAT = Instruction(8)  // ]
	OP_TAG    = Instruction(9)  // :
	OP_CALL   = Instruction(10) // ;
	OP_MARK   = Instruction(11) // =
	OP_RECALL = Instruction(12) // _
	OP_HOME   = Instruction(13) // ~
	OP_RETURN = Instruction(14) // /
	OP_NOT    = Instruction(15) // ?

	OP_COUNT = 16 // Number of instructions.
)

var _decode [256]Instruction

func init() {
	for op := OP_LEFT; op < OP_COUNT; op++ {
		_decode[op.String()[0]] = op
	}
}

// Decode returns the instruction for a program character.
// Characters that are not instructions decode to OP_NOP.
func Decode(c byte) Instruction {
	return _decode[c]
}

// Char returns the program character of the instruction, or 0 for OP_NOP.
func (op Instruction) Char() (c byte) {
	if op > OP_NOP && op < OP_COUNT {
		c = op.String()[0]
	}
	return
}
