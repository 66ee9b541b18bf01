package csrfile_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/blacktop/go-riscvh"
	"github.com/blacktop/go-riscvh/csrfile"
)

var _ = Describe("File", func() {
	var f *csrfile.File

	BeforeEach(func() {
		f = csrfile.New()
	})

	Describe("raw access", func() {
		It("should start zeroed", func() {
			for _, c := range riscvh.CSRs() {
				v, err := f.ReadCSR(c)
				Expect(err).To(BeNil())
				Expect(v).To(Equal(uint64(0)), c.String())
			}
		})

		It("should keep every bit of a plain word register", func() {
			Expect(f.WriteCSR(riscvh.CSRVsscratch, 0xDEADBEEFCAFEBABE)).To(Succeed())
			Expect(f.ReadCSR(riscvh.CSRVsscratch)).To(Equal(uint64(0xDEADBEEFCAFEBABE)))
		})

		It("should drop reserved hedeleg bits", func() {
			Expect(f.WriteCSR(riscvh.CSRHedeleg, ^uint64(0))).To(Succeed())
			Expect(f.ReadCSR(riscvh.CSRHedeleg)).To(Equal(uint64(0xB1FF)))
		})

		It("should hard-wire hgeie bit 0 to zero", func() {
			Expect(f.WriteCSR(riscvh.CSRHgeie, ^uint64(0))).To(Succeed())
			Expect(f.ReadCSR(riscvh.CSRHgeie)).To(Equal(^uint64(1)))
		})

		It("should keep hgatp bits 58-59 zero", func() {
			Expect(f.WriteCSR(riscvh.CSRHgatp, ^uint64(0))).To(Succeed())
			Expect(f.ReadCSR(riscvh.CSRHgatp)).To(Equal(uint64(0xF3FFFFFFFFFFFFFF)))
		})
	})

	Describe("set and clear", func() {
		It("should OR the mask in", func() {
			Expect(f.WriteCSR(riscvh.CSRHie, 1<<2)).To(Succeed())
			Expect(f.SetCSR(riscvh.CSRHie, 1<<10)).To(Succeed())
			Expect(f.ReadCSR(riscvh.CSRHie)).To(Equal(uint64(1<<2 | 1<<10)))
		})

		It("should clear only the masked bits", func() {
			Expect(f.WriteCSR(riscvh.CSRHie, 1<<2|1<<6|1<<10)).To(Succeed())
			Expect(f.ClearCSR(riscvh.CSRHie, 1<<6)).To(Succeed())
			Expect(f.ReadCSR(riscvh.CSRHie)).To(Equal(uint64(1<<2 | 1<<10)))
		})
	})

	Describe("access rules", func() {
		It("should reject writes to hgeip", func() {
			Expect(f.WriteCSR(riscvh.CSRHgeip, 2)).To(MatchError(riscvh.ErrReadOnly))
			Expect(f.SetCSR(riscvh.CSRHgeip, 2)).To(MatchError(riscvh.ErrReadOnly))
		})

		It("should let hardware update hgeip", func() {
			Expect(f.Inject(riscvh.CSRHgeip, 1<<3|1)).To(Succeed())
			Expect(f.ReadCSR(riscvh.CSRHgeip)).To(Equal(uint64(1 << 3)))
		})

		It("should reject CSRs it does not define", func() {
			_, err := f.ReadCSR(riscvh.CSR(0x300))
			Expect(err).To(MatchError(riscvh.ErrUnknownCSR))
			Expect(f.Inject(riscvh.CSR(0x300), 1)).To(MatchError(riscvh.ErrUnknownCSR))
		})

		It("should require hypervisor privilege", func() {
			f.SetPrivilege(riscvh.PrivSupervisor)
			_, err := f.ReadCSR(riscvh.CSRHstatus)
			Expect(err).To(MatchError(riscvh.ErrPrivilege))
			Expect(f.WriteCSR(riscvh.CSRVsatp, 0)).To(MatchError(riscvh.ErrPrivilege))

			f.SetPrivilege(riscvh.PrivMachine)
			_, err = f.ReadCSR(riscvh.CSRHstatus)
			Expect(err).To(BeNil())
		})
	})

	Describe("through a hart", func() {
		var h *riscvh.Hart

		BeforeEach(func() {
			var err error
			h, err = riscvh.NewHart(f)
			Expect(err).To(BeNil())
		})

		It("should commit a register view", func() {
			g := riscvh.HgatpFromBits(0)
			g.SetMode(riscvh.ModeSv48x4)
			g.SetVMID(0x2A3F)
			g.SetPPN(0x123456789AB)
			Expect(g.Write(h)).To(Succeed())

			Expect(f.ReadCSR(riscvh.CSRHgatp)).To(Equal(uint64(9<<60 | 0x2A3F<<44 | 0x123456789AB)))

			back, err := riscvh.ReadHgatp(h)
			Expect(err).To(BeNil())
			Expect(back.Bits()).To(Equal(g.Bits()))
		})

		It("should flip single flags in place", func() {
			Expect(riscvh.HstatusFromBits(0x2A << 12).Write(h)).To(Succeed())
			Expect(h.SetFlag(riscvh.HstatusVTSR)).To(Succeed())
			Expect(h.SetFlag(riscvh.HstatusSPV)).To(Succeed())
			Expect(h.ClearFlag(riscvh.HstatusSPV)).To(Succeed())

			s, err := riscvh.ReadHstatus(h)
			Expect(err).To(BeNil())
			Expect(s.VTSR()).To(BeTrue())
			Expect(s.SPV()).To(BeFalse())
			Expect(s.VGEIN()).To(Equal(uint64(0x2A)))
		})

		It("should surface an illegal mode loaded by hardware", func() {
			Expect(f.Inject(riscvh.CSRVsatp, 7<<60)).To(Succeed())
			s, err := riscvh.ReadVsatp(h)
			Expect(err).To(BeNil())
			_, err = s.Mode()
			Expect(err).To(MatchError(riscvh.ErrIllegalFieldValue))
		})

		It("should pass access errors up", func() {
			_, err := riscvh.ReadHgeip(h)
			Expect(err).To(BeNil())
			Expect(h.Write(riscvh.CSRHgeip, 2)).To(MatchError(riscvh.ErrReadOnly))
		})

		It("should read a split time delta", func() {
			Expect(riscvh.WriteHtimedeltah(h, 0x1)).To(Succeed())
			Expect(riscvh.WriteHtimedelta(h, 0xFFFFFFF0)).To(Succeed())
			Expect(riscvh.ReadHtimedelta64(h, 32)).To(Equal(uint64(0x1FFFFFFF0)))
			Expect(riscvh.ReadHtimedelta64(h, 64)).To(Equal(uint64(0xFFFFFFF0)))
		})
	})

	It("should snapshot written registers", func() {
		Expect(f.WriteCSR(riscvh.CSRVsepc, 0x8000_0000)).To(Succeed())
		snap := f.Snapshot()
		Expect(snap).To(HaveKeyWithValue(riscvh.CSRVsepc, uint64(0x8000_0000)))
		snap[riscvh.CSRVsepc] = 0
		Expect(f.ReadCSR(riscvh.CSRVsepc)).To(Equal(uint64(0x8000_0000)))
	})
})
