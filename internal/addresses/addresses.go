// internal/addresses/addresses.go
package addresses

// Parameter-access window offsets. Layout is protocol-locked: the gateway
// exposes the current/min/max value of a parameter, and the flash/RAM write
// target, as fixed shifts of the same register address.
const (
	ReadFlash uint16 = 0    // actual value stored in flash
	ReadMin   uint16 = 2000 // minimum allowed value
	ReadMax   uint16 = 4000 // maximum allowed value

	WriteFlashRAM uint16 = 0    // persist to flash and RAM
	WriteRAMOnly  uint16 = 6000 // volatile write, no flash wear
)

// MaxOffset is the highest dip-switch offset the bus can carry: the BSP
// unicast id sits at offset+61 and Modbus unit addresses stop at 247.
const MaxOffset uint8 = 186

// Space holds every device id reachable through one Xcom-485i gateway for a
// given dip-switch offset. Built once, read-only afterwards; reconstruct it
// if the offset changes.
type Space struct {
	Offset uint8

	Gateway uint8 // the Xcom-485i itself, status and message queue
	System  uint8 // installation-wide registers (system time)

	// Xtender inverter/chargers: per-phase multicast, class multicast,
	// up to 9 unicast ids ordered by the RCC index.
	XTL1Group uint8
	XTL2Group uint8
	XTL3Group uint8
	XTGroup   uint8
	XT        [9]uint8

	// VarioTrack MPPT solar chargers.
	VTGroup uint8
	VT      [15]uint8

	// VarioString MPPT solar chargers.
	VSGroup uint8
	VS      [15]uint8

	// BSP battery monitor or Xcom-CAN BMS.
	BSPGroup uint8
	BSP      uint8
}

// New derives the full address space from the dip-switch offset.
// Pure arithmetic, no failure modes; offsets above MaxOffset produce ids
// outside the Modbus unit range and are rejected by config validation.
func New(offset uint8) Space {
	s := Space{
		Offset:    offset,
		Gateway:   offset + 1,
		System:    offset + 2,
		XTL1Group: offset + 7,
		XTL2Group: offset + 8,
		XTL3Group: offset + 9,
		XTGroup:   offset + 10,
		VTGroup:   offset + 20,
		VSGroup:   offset + 40,
		BSPGroup:  offset + 60,
	}

	for i := range s.XT {
		s.XT[i] = s.XTGroup + uint8(i) + 1
	}
	for i := range s.VT {
		s.VT[i] = s.VTGroup + uint8(i) + 1
	}
	for i := range s.VS {
		s.VS[i] = s.VSGroup + uint8(i) + 1
	}
	s.BSP = s.BSPGroup + 1

	return s
}
